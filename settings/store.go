// Package settings persists the handful of scalar values glowbar keeps
// between sessions. It is a thin layer over the Fyne preferences API so the
// rest of the application never touches platform storage directly.
package settings

import "log"

// Setting names as stored in the platform key-value store.
const (
	KeyColorTemp   = "ColorTemp"
	KeyBrightness  = "Brightness"
	KeyBarStyle    = "BarStyle"
	KeyBorderWidth = "BorderWidth"
	KeyRingSize    = "RingSize"
	KeyRingX       = "RingX"
	KeyRingY       = "RingY"
)

// Defaults applied when a key is missing or its stored value cannot be
// coerced to the expected type. RingX/RingY of -1 mean "center on the
// work area".
const (
	DefaultColorTemp   = 4000
	DefaultBrightness  = 1.0
	DefaultBarStyle    = "sides"
	DefaultBorderWidth = 100
	DefaultRingSize    = 400
	DefaultRingPos     = -1
)

// Prefs is the slice of fyne.Preferences the store actually uses.
// fyne.Preferences satisfies it; tests substitute a map-backed fake.
type Prefs interface {
	IntWithFallback(key string, fallback int) int
	FloatWithFallback(key string, fallback float64) float64
	StringWithFallback(key, fallback string) string
	SetInt(key string, value int)
	SetFloat(key string, value float64)
	SetString(key, value string)
}

// Store reads and writes persisted settings. Reads are best-effort: any
// missing or malformed entry yields the caller's default unchanged. Writes
// are best-effort too; the backing store swallows failures, so there is
// nothing to surface. Last writer wins, no locking (single process, single
// writer).
type Store struct {
	prefs Prefs
}

func NewStore(prefs Prefs) *Store {
	return &Store{prefs: prefs}
}

// Int loads a named int setting, falling back to def on any failure.
func (s *Store) Int(name string, def int) int {
	return s.prefs.IntWithFallback(name, def)
}

// Float loads a named float setting, falling back to def on any failure.
func (s *Store) Float(name string, def float64) float64 {
	return s.prefs.FloatWithFallback(name, def)
}

// String loads a named string setting, falling back to def on any failure.
func (s *Store) String(name, def string) string {
	return s.prefs.StringWithFallback(name, def)
}

func (s *Store) SetInt(name string, value int) {
	log.Printf("[Settings] %s = %d", name, value)
	s.prefs.SetInt(name, value)
}

func (s *Store) SetFloat(name string, value float64) {
	log.Printf("[Settings] %s = %.2f", name, value)
	s.prefs.SetFloat(name, value)
}

func (s *Store) SetString(name, value string) {
	log.Printf("[Settings] %s = %s", name, value)
	s.prefs.SetString(name, value)
}
