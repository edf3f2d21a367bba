// Package mini implements a lightweight, prompt-driven interface for browsing colors and deriving palettes.
package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

// bind is a named menu action.
type bind struct {
	name string
}

func (b *bind) String() string {
	return b.name
}

var (
	quit     = &bind{"Quit"}
	back     = &bind{"Back"}
	search   = &bind{"Search"}
	generate = &bind{"Generate Schemes"}
	copyHex  = &bind{"Copy Hex"}
	favorite = &bind{"Toggle Favorite"}
	save     = &bind{"Save Markdown"}
)

// menu prompts a selection over items followed by the given action binds.
// Quit is always available as the last option.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	binds = append(binds, quit)

	options := make([]string, 0, len(items)+len(binds))
	for _, item := range items {
		options = append(options, item.String())
	}
	for _, b := range binds {
		options = append(options, b.String())
	}

	prompt := survey.Select{
		Options:  options,
		PageSize: pageSize,
	}

	var idx int
	if err := survey.AskOne(&prompt, &idx); err != nil {
		return nil, zero, err
	}

	if idx < len(items) {
		return nil, items[idx], nil
	}

	return binds[idx-len(items)], zero, nil
}

type input struct {
	value string
}

// getInput prompts for a line of text until the validator accepts it.
func getInput(validate func(string) bool) (*input, error) {
	prompt := survey.Input{}

	var value string
	err := survey.AskOne(&prompt, &value, survey.WithValidator(func(answer any) error {
		s, _ := answer.(string)
		if !validate(s) {
			return errors.New("invalid input")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return &input{value: value}, nil
}

// multiselect prompts a multiple choice selection.
func multiselect(message string, options, defaults []string) ([]string, error) {
	prompt := survey.MultiSelect{
		Message:  message,
		Options:  options,
		Default:  defaults,
		PageSize: pageSize,
	}

	var chosen []string
	if err := survey.AskOne(&prompt, &chosen); err != nil {
		return nil, err
	}

	return chosen, nil
}

func title(t string) {
	fmt.Println(style.Title(t))
}

func progress(msg string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), msg))
}

func fail(msg string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(msg))
}

func success(msg string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Success), style.Fg(color.Green)(msg))
}
