package render

import "github.com/goliatone/go-uikit/pkg/component"

// Default*Classes are the utility class lists components emit when no theme
// token or per-component override applies.
const (
	DefaultHeadingClasses  = "text-2xl font-bold"
	DefaultTextClasses     = "text-base text-lg"
	DefaultButtonClasses   = "bg-slate-500 hover:bg-slate-700 text-white font-bold py-2 px-3 rounded"
	DefaultNavBarClasses   = "bg-white p-4 border-b border-slate-300"
	DefaultDropdownClasses = "bg-white border border-slate-300 text-slate-800 px-3 py-2 rounded"
	DefaultSliderClasses   = "slider bg-slate-200 appearance-none rounded h-2"
)

// classTokenPrefix keys the theme tokens that override per-kind class lists,
// e.g. a "classes.button" token replaces DefaultButtonClasses.
const classTokenPrefix = "classes."

func defaultClasses() map[component.Kind]string {
	return map[component.Kind]string{
		component.KindHeading:  DefaultHeadingClasses,
		component.KindText:     DefaultTextClasses,
		component.KindButton:   DefaultButtonClasses,
		component.KindNavBar:   DefaultNavBarClasses,
		component.KindDropdown: DefaultDropdownClasses,
		component.KindSlider:   DefaultSliderClasses,
		component.KindMarkup:   "",
		component.KindPage:     "",
	}
}
