package tailsort

// PluginClasses lists classes added by supported first party plugins
var PluginClasses = map[string][]string{
	"@tailwindcss/forms": {
		"form-input", "form-textarea", "form-select", "form-multiselect",
		"form-checkbox", "form-radio",
	},
	"@tailwindcss/typography": {
		"prose", "prose-sm", "prose-base", "prose-lg", "prose-xl", "prose-2xl",
		"prose-invert", "not-prose",
		"prose-slate", "prose-gray", "prose-zinc", "prose-neutral", "prose-stone",
	},
	"@tailwindcss/aspect-ratio": {
		"aspect-none",
		"aspect-w-1", "aspect-w-2", "aspect-w-3", "aspect-w-4", "aspect-w-16",
		"aspect-h-1", "aspect-h-2", "aspect-h-3", "aspect-h-4", "aspect-h-9",
	},
}
