package shortener

import (
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	DefaultLength = 8
	Alphabet      = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var ErrInvalidLength = errors.New("code length must be positive")

// Generator produces random URL-safe codes. It holds no mutable state and is
// safe for concurrent use. Codes are not guaranteed unique.
type Generator struct {
	length int
}

func New(length int) (*Generator, error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}
	return &Generator{length: length}, nil
}

func (g *Generator) Generate() (string, error) {
	return gonanoid.Generate(Alphabet, g.length)
}

func (g *Generator) Length() int {
	return g.length
}
