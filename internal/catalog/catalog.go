// Package catalog resolves an artwork index to its display assets.
//
// Assets follow the {kind}{index} naming convention: the image lives at
// images/img3.svg, and the strings are the message IDs title3, author3,
// year3 and description3 in the locale's message file. Everything is
// resolved once in Load into a fixed table, so a missing asset is a load
// error rather than a blank screen later.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Kind identifies one of the five assets of an artwork.
type Kind string

const (
	KindImage       Kind = "img"
	KindTitle       Kind = "title"
	KindAuthor      Kind = "author"
	KindYear        Kind = "year"
	KindDescription Kind = "description"
)

// Kinds lists every asset kind in display order.
var Kinds = []Kind{KindImage, KindTitle, KindAuthor, KindYear, KindDescription}

// Key builds the resource name for kind at index, e.g. "title3".
func Key(kind Kind, index int) string {
	return string(kind) + strconv.Itoa(index)
}

// Image is an encoded artwork image.
type Image struct {
	Name   string // file name inside the catalog, e.g. "img3.svg"
	Format string // svg, png or jpeg
	Data   []byte
}

// Assets is the bundle of display assets for one artwork.
type Assets struct {
	Index       int
	Image       Image
	Title       string
	Author      string
	Year        string
	Description string
}

// Catalog is a fixed lookup table from index to Assets.
type Catalog struct {
	name    string
	locale  string
	entries []Assets
}

// Load reads the manifest, the message files and the images, and resolves
// every asset of every index. All missing assets are reported together.
func Load(cfg Config) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := openRoot(cfg.Dir)
	if err != nil {
		return nil, err
	}

	m, err := readManifest(root, cfg.ManifestFile)
	if err != nil {
		return nil, err
	}

	localizer, err := newLocalizer(root, m, cfg.Locale)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		name:    m.Name,
		locale:  cfg.Locale,
		entries: make([]Assets, m.Size),
	}

	var errs []error
	for i := 0; i < m.Size; i++ {
		a, err := resolve(root, m, localizer, i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.entries[i] = a
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog %q: %w", m.Name, errors.Join(errs...))
	}

	return c, nil
}

func openRoot(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}
	if !info.IsDir() {
		return nil, &ConfigError{Field: "Dir", Message: "is not a directory"}
	}
	return os.DirFS(dir), nil
}

func newLocalizer(root fs.FS, m Manifest, locale string) (*i18n.Localizer, error) {
	fallback, err := language.Parse(m.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("manifest default_locale: %w", err)
	}

	bundle := i18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(root, path.Join(m.StringsDir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no message files in %s: %w", m.StringsDir, ErrNotFound)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(root, f); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", f, err)
		}
	}

	return i18n.NewLocalizer(bundle, locale, m.DefaultLocale), nil
}

func resolve(root fs.FS, m Manifest, l *i18n.Localizer, index int) (Assets, error) {
	a := Assets{Index: index}
	var errs []error

	name := Key(KindImage, index) + "." + m.ImageExt
	data, err := fs.ReadFile(root, path.Join(m.ImagesDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, notFound(KindImage, index))
		} else {
			errs = append(errs, &LookupError{Kind: KindImage, Index: index, Err: err})
		}
	} else {
		a.Image = Image{Name: name, Format: imageFormat(m.ImageExt), Data: data}
	}

	text := map[Kind]*string{
		KindTitle:       &a.Title,
		KindAuthor:      &a.Author,
		KindYear:        &a.Year,
		KindDescription: &a.Description,
	}
	for _, kind := range Kinds[1:] {
		s, err := l.Localize(&i18n.LocalizeConfig{MessageID: Key(kind, index)})
		if err != nil {
			var nf *i18n.MessageNotFoundErr
			if errors.As(err, &nf) {
				errs = append(errs, notFound(kind, index))
			} else {
				errs = append(errs, &LookupError{Kind: kind, Index: index, Err: err})
			}
			continue
		}
		*text[kind] = s
	}

	return a, errors.Join(errs...)
}

func imageFormat(ext string) string {
	switch strings.ToLower(ext) {
	case "jpg", "jpeg":
		return "jpeg"
	default:
		return strings.ToLower(ext)
	}
}

// Resolve returns the assets for index.
func (c *Catalog) Resolve(index int) (Assets, error) {
	if index < 0 || index >= len(c.entries) {
		return Assets{}, notFound(KindImage, index)
	}
	return c.entries[index], nil
}

// Size is the number of artworks (N).
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Name is the catalog's display name from the manifest.
func (c *Catalog) Name() string {
	return c.name
}

// Locale is the locale the strings were resolved for.
func (c *Catalog) Locale() string {
	return c.locale
}

// All returns a copy of every entry in index order.
func (c *Catalog) All() []Assets {
	out := make([]Assets, len(c.entries))
	copy(out, c.entries)
	return out
}
