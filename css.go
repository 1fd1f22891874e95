package colormap

import "fmt"

// CSS style-fragment helpers over the Color textual seam. These are
// thin collaborators for presentation code; the engine itself never
// depends on them.

// CSSBackground formats a background-color style fragment.
func CSSBackground(c Color) string {
	return fmt.Sprintf("background-color:%s;", c)
}

// CSSColors formats a combined foreground+background style fragment,
// picking black or white text for contrast against the background.
func CSSColors(bg Color) string {
	fg := "black"
	if bg.Luminance() < 127.5 {
		fg = "white"
	}
	return fmt.Sprintf("color:%s;background-color:%s;", fg, bg)
}
