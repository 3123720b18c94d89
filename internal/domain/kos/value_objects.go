package kos

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName            = errors.New("kos name cannot be empty")
	ErrNameTooLong          = errors.New("kos name exceeds maximum length")
	ErrEmptyAddress         = errors.New("kos address cannot be empty")
	ErrInvalidMonthlyPrice  = errors.New("monthly price must be positive")
	ErrInvalidRoomTotal     = errors.New("room total must be positive")
	ErrInvalidGenderPolicy  = errors.New("invalid gender policy")
	ErrInvalidPhotoURL      = errors.New("photo url cannot be empty")
	ErrPhotoCaptionTooLong  = errors.New("photo caption exceeds maximum length")
)

const (
	MaxNameLength         = 120
	MaxPhotoCaptionLength = 200
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if len(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) String() string {
	return n.value
}

// MonthlyPrice is a whole-rupiah amount. The marketplace never deals in
// fractional currency, so the unit is the rupiah itself, not cents.
type MonthlyPrice struct {
	amount int64
}

func NewMonthlyPrice(amount int64) (MonthlyPrice, error) {
	if amount <= 0 {
		return MonthlyPrice{}, ErrInvalidMonthlyPrice
	}
	return MonthlyPrice{amount: amount}, nil
}

func (p MonthlyPrice) Amount() int64 {
	return p.amount
}

type Photo struct {
	url      string
	caption  string
	position int
}

func NewPhoto(url, caption string, position int) (Photo, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Photo{}, ErrInvalidPhotoURL
	}
	caption = strings.TrimSpace(caption)
	if len(caption) > MaxPhotoCaptionLength {
		return Photo{}, ErrPhotoCaptionTooLong
	}
	return Photo{url: url, caption: caption, position: position}, nil
}

func (p Photo) URL() string     { return p.url }
func (p Photo) Caption() string { return p.caption }
func (p Photo) Position() int   { return p.position }
