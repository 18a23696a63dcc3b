// config.go - Command line and TOML configuration

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// appConfig holds every setting of a disassembly run. Values come from the
// defaults, then an optional TOML file, then explicit flags.
type appConfig struct {
	Notation  string   `toml:"notation"`
	Color     string   `toml:"color"`
	Verify    bool     `toml:"verify"`
	Script    string   `toml:"script"`
	Clipboard bool     `toml:"clipboard"`
	Raw       bool     `toml:"raw"`
	Base      uint64   `toml:"base"`
	Sections  []string `toml:"sections"`
	Count     int      `toml:"count"`

	ConfigPath  string `toml:"-"`
	ShowVersion bool   `toml:"-"`
	Input       string `toml:"-"`
}

func defaultConfig() appConfig {
	return appConfig{
		Notation: string(NotationINT),
		Color:    string(colorAuto),
		Base:     0x00400000,
	}
}

func loadConfigFile(path string, cfg *appConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// parseAddr accepts hex (0x prefix) or decimal.
func parseAddr(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseConfig builds the run configuration from args (without the program
// name). usage receives the help text; flag.ErrHelp is returned for -h.
func parseConfig(args []string, usage io.Writer) (*appConfig, error) {
	var (
		configPath string
		notation   string
		color      string
		verify     bool
		script     string
		clip       bool
		raw        bool
		base       string
		sections   string
		count      int
		version    bool
	)

	flagSet := flag.NewFlagSet("disassemblr", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "TOML configuration file")
	flagSet.StringVar(&notation, "notation", string(NotationINT), "Number notation: INT or AT&T")
	flagSet.StringVar(&color, "color", string(colorAuto), "Colour output: auto, always or never")
	flagSet.BoolVar(&verify, "verify", false, "Cross-check instruction lengths with x86asm")
	flagSet.StringVar(&script, "script", "", "Lua annotation script")
	flagSet.BoolVar(&clip, "clip", false, "Copy the listing to the clipboard")
	flagSet.BoolVar(&raw, "raw", false, "Treat the input as flat code, not a PE image")
	flagSet.StringVar(&base, "base", "0x00400000", "Load address for -raw input (hex or decimal)")
	flagSet.StringVar(&sections, "sections", "", "Comma separated section names to list")
	flagSet.IntVar(&count, "count", 0, "Maximum instructions per section (0 = all)")
	flagSet.BoolVar(&version, "version", false, "Print version and compiled features")

	flagSet.Usage = func() {
		flagSet.SetOutput(usage)
		fmt.Fprintln(usage, "Usage: disassemblr [flags] file")
		flagSet.PrintDefaults()
		flagSet.SetOutput(io.Discard)
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if configPath != "" {
		if err := loadConfigFile(configPath, &cfg); err != nil {
			return nil, err
		}
	}

	var visitErr error
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "notation":
			cfg.Notation = notation
		case "color":
			cfg.Color = color
		case "verify":
			cfg.Verify = verify
		case "script":
			cfg.Script = script
		case "clip":
			cfg.Clipboard = clip
		case "raw":
			cfg.Raw = raw
		case "base":
			v, err := parseAddr(base)
			if err != nil {
				visitErr = err
				return
			}
			cfg.Base = v
		case "sections":
			cfg.Sections = splitList(sections)
		case "count":
			cfg.Count = count
		}
	})
	if visitErr != nil {
		return nil, visitErr
	}

	cfg.ConfigPath = configPath
	cfg.ShowVersion = version
	cfg.Input = flagSet.Arg(0)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *appConfig) validate() error {
	if !Notation(c.Notation).valid() {
		return &InvalidNotationError{Notation: Notation(c.Notation)}
	}
	if !colorMode(c.Color).valid() {
		return fmt.Errorf("invalid colour mode %q, want auto, always or never", c.Color)
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative")
	}
	if !c.ShowVersion && c.Input == "" {
		return fmt.Errorf("no input file")
	}
	return nil
}

// wantSection reports whether a section is selected by -sections.
func (c *appConfig) wantSection(name string) bool {
	return len(c.Sections) == 0 || slices.Contains(c.Sections, name)
}
