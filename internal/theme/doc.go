// Package theme handles the light/dark preference and the color palettes used
// to render the tickr faces. Palettes are embedded as TOML and can be
// overridden per name from ~/.config/tickr/palettes/.
package theme
