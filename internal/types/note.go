package types

import "time"

// Flag is a boolean that travels as 0/1 on the wire.
type Flag bool

func (f Flag) Bool() bool {
	return bool(f)
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "1", "true":
		*f = true
	case "0", "false", "null":
		*f = false
	default:
		return &FlagError{Raw: string(data)}
	}
	return nil
}

type FlagError struct {
	Raw string
}

func (e *FlagError) Error() string {
	return "invalid flag value: " + e.Raw
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Pinned    Flag      `json:"pinned"`
	Archived  Flag      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotePatch is a partial note update. Pointer fields distinguish "leave
// unchanged" from explicit zero values, which matters for the flags.
type NotePatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Pinned   *Flag   `json:"pinned,omitempty"`
	Archived *Flag   `json:"archived,omitempty"`
}

func String(v string) *string {
	return &v
}

func FlagOf(v bool) *Flag {
	f := Flag(v)
	return &f
}
