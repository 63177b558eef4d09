package views

import (
	"math"
	"time"
)

const (
	flipDuration = 0.25
	flipStagger  = 0.025
	listStagger  = 0.2
)

// FlipLetter is one animated character of a hover flip link.
type FlipLetter struct {
	Char  string
	Space bool
	Delay float64
}

func FlipLetters(text string) []FlipLetter {
	letters := make([]FlipLetter, 0, len(text))
	i := 0
	for _, r := range text {
		letters = append(letters, FlipLetter{
			Char:  string(r),
			Space: r == ' ',
			Delay: seconds(flipStagger * float64(i)),
		})
		i++
	}
	return letters
}

func FlipDuration() float64 {
	return flipDuration
}

// Stagger is the entry delay in seconds of the i-th list item.
func Stagger(i int) float64 {
	return seconds(listStagger * float64(i))
}

func millis(d time.Duration) int64 {
	return d.Milliseconds()
}

// keeps float noise like 0.07500000000000001 out of the markup
func seconds(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// FlipLink is an external link whose text flips letter by letter on hover.
type FlipLink struct {
	Text string
	Href string
}

func (l FlipLink) Letters() []FlipLetter {
	return FlipLetters(l.Text)
}
