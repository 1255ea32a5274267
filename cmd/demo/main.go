package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/kovidgoyal/tint"
)

var _ = fmt.Print

func in_encoding(c tint.SrgbaU8, id tint.ID) fmt.Stringer {
	switch id {
	case tint.SRGB_U8:
		return tint.Convert[tint.SrgbU8](c)
	case tint.SRGB_F32:
		return tint.Convert[tint.SrgbF32](c)
	case tint.SRGBA_U8:
		return c
	case tint.SRGBA_F32:
		return tint.Convert[tint.SrgbaF32](c)
	case tint.SRGBA_PREMULTIPLIED_U8:
		return tint.Convert[tint.SrgbaPremultipliedU8](c)
	case tint.LINEAR_SRGB:
		return tint.Convert[tint.LinearSrgb](c)
	case tint.LINEAR_SRGBA:
		return tint.Convert[tint.LinearSrgba](c)
	case tint.LINEAR_SRGBA_PREMULTIPLIED:
		return tint.Convert[tint.LinearSrgbaPremultiplied](c)
	case tint.OKLAB:
		return tint.Convert[tint.Oklab](c)
	case tint.LINEAR_ADOBE_RGB:
		return tint.Convert[tint.LinearAdobeRgb](c)
	case tint.ADOBE_RGB_U8:
		return tint.Convert[tint.AdobeRgbU8](c)
	case tint.LINEAR_PROPHOTO_RGB:
		return tint.Convert[tint.LinearProPhotoRgb](c)
	case tint.PROPHOTO_RGB_U8:
		return tint.Convert[tint.ProPhotoRgbU8](c)
	case tint.LINEAR_DISPLAY_P3:
		return tint.Convert[tint.LinearDisplayP3](c)
	case tint.DISPLAY_P3_U8:
		return tint.Convert[tint.DisplayP3U8](c)
	case tint.LINEAR_BT2020:
		return tint.Convert[tint.LinearBt2020](c)
	case tint.ACES_CG:
		return tint.Convert[tint.AcesCg](c)
	case tint.ACES_2065:
		return tint.Convert[tint.Aces2065](c)
	}
	return nil
}

func print_color(c tint.SrgbaU8) {
	fmt.Printf("%s  luminance: %.4f\n", c.AsSharp(), tint.Luminance(c))
	for _, d := range tint.Catalog() {
		fmt.Printf("  %-26s %s\n", d.Name+":", in_encoding(c, d.ID))
	}
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	verbose := flag.Bool("v", false, "log debug information to stderr")
	version := flag.Bool("version", false, "print the version and exit")
	blend := flag.Float64("blend", -1, "with two colors, also print the blend at this fraction of the way from the first to the second")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/demo [options] #rrggbb[aa] ...")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Println(tint.Version)
		return
	}
	if *verbose {
		tint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	colors := make([]tint.SrgbaU8, 0, flag.NArg())
	for _, arg := range flag.Args() {
		c, perr := tint.ParseSharp(arg)
		if perr != nil {
			err = perr
			return
		}
		colors = append(colors, c)
	}
	for _, c := range colors {
		print_color(c)
	}
	if *blend < 0 {
		return
	}
	if len(colors) != 2 {
		err = fmt.Errorf("blending needs exactly two colors, not %d", len(colors))
		return
	}
	lin, err := tint.ConvertAll[tint.LinearSrgba](colors)
	if err != nil {
		return
	}
	lab, err := tint.ConvertAll[tint.Oklab](colors)
	if err != nil {
		return
	}
	p := tint.Convert[tint.SrgbU8](tint.PerceptualBlend(lab[0], lab[1], *blend))
	l := tint.Convert[tint.SrgbaU8](tint.Lerp(lin[0], lin[1], *blend))
	fmt.Printf("blend at %v\n  %-26s %s %s\n  %-26s %s %s\n", *blend,
		"perceptual (Oklab):", p.AsSharp(), p, "linear light:", l.AsSharp(), l)
	v := tint.Lerp(lin[0], lin[1], *blend).Vec()
	tint.Logger().Debug("linear blend", "vec", v)
}
