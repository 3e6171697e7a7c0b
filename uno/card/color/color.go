package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction(text)
}

func (c *colorStruct) Paintf(format string, args ...interface{}) string {
	return c.colorFunction(format, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "Red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "Green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "Blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "Yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

// Precedence is the fixed order used to break ties when a bot picks the
// color it holds the most of.
var Precedence = []Color{Red, Green, Blue, Yellow}

func ByName(name string) (Color, error) {
	for _, c := range Precedence {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("invalid color '%s'", name)
}
