package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"logotint/codec"
	"logotint/engine"
	"logotint/hexcolor"
	"logotint/logo"
	"logotint/model"
	"logotint/preset"
)

var (
	applyPreset        string
	applySet           []string
	applyRandom        []string
	applyCaseSensitive bool
	applyTemplate      string
	applyOut           string
	presetsNear        string
	schemeName         string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Write a recolored logo",
	Long:  "Recolor the logo template with a preset and/or explicit slot colors and write the SVG.",
	Example: `  logotint apply --preset arctic
  logotint apply --set primary=#112233 --set accent=#abc --out brand.svg`,
	RunE: runApply,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the color presets",
	RunE:  runPresets,
}

var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Export and import color scheme files",
}

var schemeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a color scheme file",
	RunE:  runSchemeExport,
}

var schemeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Read and validate a color scheme file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemeImport,
}

var colorsCmd = &cobra.Command{
	Use:   "colors [file]",
	Short: "List the color tokens of an SVG",
	Long:  "List the distinct color tokens of an SVG file, or of the built-in logo when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runColors,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := semver.NewVersion(appVersion)
		if err != nil {
			return fmt.Errorf("bad build version %q: %w", appVersion, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "logotint %s (envelope format %s)\n", v, codec.Version)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{applyCmd, schemeExportCmd} {
		c.Flags().StringVar(&applyPreset, "preset", "", "Start from this preset")
		c.Flags().StringArrayVar(&applySet, "set", nil, "Slot color as slot=#hex (repeatable)")
		c.Flags().StringArrayVar(&applyRandom, "random", nil, "Give this slot a random color, or \"all\" (repeatable)")
		c.Flags().StringVarP(&applyOut, "out", "o", "", "Output file (default: generated name, - for stdout)")
	}
	applyCmd.Flags().BoolVar(&applyCaseSensitive, "case-sensitive", false, "Match template colors case-sensitively")
	applyCmd.Flags().StringVar(&applyTemplate, "template", "", "SVG to recolor instead of the built-in logo")
	schemeExportCmd.Flags().StringVar(&schemeName, "name", "", "Scheme name (default: derived from the file name)")
	presetsCmd.Flags().StringVar(&presetsNear, "near", "", "Only show the preset closest to this color")

	schemeCmd.AddCommand(schemeExportCmd, schemeImportCmd)
}

// parseSets turns repeated slot=#hex flags into a palette.
func parseSets(sets []string) (model.Palette, error) {
	var p model.Palette
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return model.Palette{}, fmt.Errorf("--set %q: want slot=color", s)
		}
		slot, ok := model.ParseSlot(strings.TrimSpace(name))
		if !ok {
			return model.Palette{}, fmt.Errorf("--set %q: unknown slot %q", s, name)
		}
		p.Set(slot, strings.TrimSpace(value))
	}
	return p, nil
}

// randomSlots assigns a random color to every named slot. "all" names
// every slot.
func randomSlots(names []string, rng *rand.Rand) (model.Palette, error) {
	var p model.Palette
	for _, name := range names {
		if name == "all" {
			for _, slot := range model.Slots() {
				p.Set(slot, hexcolor.Random(rng))
			}
			continue
		}
		slot, ok := model.ParseSlot(strings.TrimSpace(name))
		if !ok {
			return model.Palette{}, fmt.Errorf("--random: unknown slot %q", name)
		}
		p.Set(slot, hexcolor.Random(rng))
	}
	return p, nil
}

// requestedPalette resolves --preset, --random and --set to a delta over the
// defaults. Explicit --set colors win.
func requestedPalette() (model.Palette, error) {
	sets, err := parseSets(applySet)
	if err != nil {
		return model.Palette{}, err
	}
	random, err := randomSlots(applyRandom, nil)
	if err != nil {
		return model.Palette{}, err
	}
	delta := random.Merge(sets)
	if applyPreset == "" {
		return delta, nil
	}
	catalog, err := loadCatalog(presetsFile)
	if err != nil {
		return model.Palette{}, err
	}
	base, err := catalog.Get(applyPreset)
	if err != nil {
		return model.Palette{}, err
	}
	return base.Merge(delta), nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	delta, err := requestedPalette()
	if err != nil {
		return err
	}

	doc := logo.Template()
	if applyTemplate != "" {
		data, err := os.ReadFile(applyTemplate)
		if err != nil {
			return err
		}
		doc = string(data)
	}

	res, err := engine.Apply(doc, delta, engine.Options{CaseSensitive: applyCaseSensitive})
	if err != nil {
		return err
	}
	warn := color.New(color.FgYellow).FprintfFunc()
	for _, e := range res.Errors {
		warn(cmd.ErrOrStderr(), "skipped %s\n", e)
	}

	out := applyOut
	if out == "" {
		out = codec.DefaultLogoFilename(time.Now())
	}
	if err := writeOutput(cmd, out, []byte(res.Document)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d replacements\n", res.Replacements)
	return nil
}

func runColors(cmd *cobra.Command, args []string) error {
	doc := logo.Template()
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		doc = string(data)
	}

	w := cmd.OutOrStdout()
	for _, tok := range hexcolor.Extract(doc) {
		r, g, b, err := hexcolor.ToRGB(tok)
		if err != nil {
			continue
		}
		color.New().AddBgRGB(int(r), int(g), int(b)).Fprint(w, "  ")
		fmt.Fprintf(w, " %s\n", tok)
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(presetsFile)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if presetsNear != "" {
		p, dist, err := catalog.Nearest(presetsNear)
		if err != nil {
			return err
		}
		printPreset(w, p)
		fmt.Fprintf(w, "  distance %.3f\n", dist)
		return nil
	}

	for _, p := range catalog.List() {
		printPreset(w, p)
	}
	return nil
}

// printPreset writes the preset name followed by one swatch per slot.
func printPreset(w io.Writer, p preset.Preset) {
	fmt.Fprintf(w, "%-16s ", p.Name)
	for _, slot := range model.Slots() {
		r, g, b, err := hexcolor.ToRGB(p.Colors.Get(slot))
		if err != nil {
			fmt.Fprint(w, "??")
			continue
		}
		color.New().AddBgRGB(int(r), int(g), int(b)).Fprint(w, "  ")
	}
	fmt.Fprintf(w, " %s\n", p.Display)
}

func runSchemeExport(cmd *cobra.Command, args []string) error {
	delta, err := requestedPalette()
	if err != nil {
		return err
	}
	for _, slot := range model.Slots() {
		if v := delta.Get(slot); v != "" && !hexcolor.IsValid(v) {
			return fmt.Errorf("%s: %w: %q", slot, hexcolor.ErrInvalidColor, v)
		}
	}

	now := time.Now()
	out := applyOut
	if out == "" {
		out = codec.DefaultSchemeFilename(now)
	}
	name := schemeName
	if name == "" {
		name = codec.SchemeName(filepath.Base(out))
	}

	data, err := codec.Marshal(codec.Serialize(model.DefaultPalette().Merge(delta), name, now))
	if err != nil {
		return err
	}
	return writeOutput(cmd, out, append(data, '\n'))
}

func runSchemeImport(cmd *cobra.Command, args []string) error {
	imp, err := codec.ReadFile(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "name: %s\n", imp.Name)
	if imp.Version != "" {
		fmt.Fprintf(w, "version: %s\n", imp.Version)
	}
	if !imp.Timestamp.IsZero() {
		fmt.Fprintf(w, "exported: %s\n", imp.Timestamp.Local().Format(time.RFC1123))
	}

	colors := imp.Colors.Map()
	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-16s %s\n", k, colors[k])
	}

	warn := color.New(color.FgYellow).FprintfFunc()
	for _, msg := range imp.Warnings {
		warn(cmd.ErrOrStderr(), "warning: %s\n", msg)
	}
	return nil
}
