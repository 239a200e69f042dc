// Package view builds the descriptors a client renders. Every constructor is
// a pure function of its arguments.
package view

import (
	"errors"
	"fmt"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/navigation"
)

type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
	VariantDanger    Variant = "danger"
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

var (
	ErrInvalidVariant = errors.New("invalid button variant")
	ErrInvalidSize    = errors.New("invalid button size")
	ErrInvalidOption  = errors.New("selected value is not an option")
)

type ButtonOptions struct {
	Variant  Variant
	Size     Size
	Disabled bool
	Loading  bool
	Icon     string
}

type Button struct {
	Label    string  `json:"label"`
	Variant  Variant `json:"variant"`
	Size     Size    `json:"size"`
	Disabled bool    `json:"disabled"`
	Loading  bool    `json:"loading"`
	Icon     string  `json:"icon,omitempty"`
}

// NewButton fills defaults (primary, medium). A loading button is disabled.
func NewButton(label string, opts ButtonOptions) (Button, error) {
	b := Button{
		Label:    label,
		Variant:  opts.Variant,
		Size:     opts.Size,
		Disabled: opts.Disabled || opts.Loading,
		Loading:  opts.Loading,
		Icon:     opts.Icon,
	}

	switch b.Variant {
	case "":
		b.Variant = VariantPrimary
	case VariantPrimary, VariantSecondary, VariantOutline, VariantDanger:
	default:
		return Button{}, fmt.Errorf("%w: %q", ErrInvalidVariant, opts.Variant)
	}

	switch b.Size {
	case "":
		b.Size = SizeMedium
	case SizeSmall, SizeMedium, SizeLarge:
	default:
		return Button{}, fmt.Errorf("%w: %q", ErrInvalidSize, opts.Size)
	}

	return b, nil
}

type Header struct {
	Title     string `json:"title"`
	CanGoBack bool   `json:"can_go_back"`
	Action    string `json:"action,omitempty"`
}

func NewHeader(title string, canGoBack bool) Header {
	return Header{Title: title, CanGoBack: canGoBack}
}

type NavBarItem struct {
	Label  string           `json:"label"`
	Route  navigation.Route `json:"route"`
	Icon   string           `json:"icon"`
	Event  navigation.Event `json:"event"`
	Active bool             `json:"active"`
}

type NavBar struct {
	Items []NavBarItem `json:"items"`
}

// NewNavBar marks the item whose route is current as active and shows its
// active icon.
func NewNavBar(items []navigation.NavItem, current navigation.Route) NavBar {
	bar := NavBar{Items: make([]NavBarItem, 0, len(items))}

	for _, item := range items {
		active := current != navigation.RouteNone && item.Route == current

		icon := item.Icon
		if active {
			icon = item.ActiveIcon
		}

		bar.Items = append(bar.Items, NavBarItem{
			Label:  item.Label,
			Route:  item.Route,
			Icon:   icon,
			Event:  item.Event,
			Active: active,
		})
	}

	return bar
}

func NewStatsCard(title, value, subtitle, icon string) entity.StatsCard {
	return entity.StatsCard{Title: title, Value: value, Subtitle: subtitle, Icon: icon}
}

type FormInput struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Placeholder string `json:"placeholder,omitempty"`
	Secure      bool   `json:"secure"`
	Multiline   bool   `json:"multiline"`
	Keyboard    string `json:"keyboard"`
}

func NewFormInput(name, label, placeholder string) FormInput {
	return FormInput{Name: name, Label: label, Placeholder: placeholder, Keyboard: "default"}
}

func (f FormInput) WithValue(v string) FormInput {
	f.Value = v
	return f
}

func (f FormInput) AsSecure() FormInput {
	f.Secure = true
	return f
}

func (f FormInput) AsMultiline() FormInput {
	f.Multiline = true
	return f
}

func (f FormInput) AsEmail() FormInput {
	f.Keyboard = "email-address"
	return f
}

type PickerOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Picker struct {
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	Placeholder string         `json:"placeholder"`
	Options     []PickerOption `json:"options"`
	Selected    string         `json:"selected,omitempty"`
	Disabled    bool           `json:"disabled"`
}

// NewPicker returns an error when selected is neither empty nor an option.
func NewPicker(name, label string, options []PickerOption, selected string) (Picker, error) {
	p := Picker{
		Name:        name,
		Label:       label,
		Placeholder: "Select an option",
		Options:     options,
		Disabled:    len(options) == 0,
	}

	if selected == "" {
		return p, nil
	}

	for _, o := range options {
		if o.Value == selected {
			p.Selected = selected
			return p, nil
		}
	}

	return Picker{}, fmt.Errorf("%w: %q", ErrInvalidOption, selected)
}
