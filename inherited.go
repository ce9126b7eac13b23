package isolate

// inherited holds the initial values of the CSS properties that inherit by
// default. Applying it to an element stops styles leaking in from ancestors.
var inherited = Style{
	"border-collapse":       "separate",
	"border-spacing":        0,
	"caption-side":          "top",
	"color":                 "black",
	"cursor":                "auto",
	"direction":             "ltr",
	"empty-cells":           "show",
	"font-family":           "serif",
	"font-size":             "medium",
	"font-style":            "normal",
	"font-variant":          "normal",
	"font-weight":           "normal",
	"font-stretch":          "normal",
	"line-height":           "normal",
	"hyphens":               "none",
	"letter-spacing":        "normal",
	"list-style":            "disc outside none",
	"orphans":               2,
	"quotes":                "initial",
	"tab-size":              8,
	"text-align":            "left",
	"text-align-last":       "auto",
	"text-decoration-color": "initial",
	"text-indent":           0,
	"text-justify":          "auto",
	"text-shadow":           "none",
	"text-transform":        "none",
	"visibility":            "visible",
	"white-space":           "normal",
	"widows":                2,
	"word-spacing":          "normal",
}

// InheritedReset returns a fresh copy of the built-in reset declarations.
func InheritedReset() Style {
	return inherited.Clone()
}
