/*
Command twcli is an interactive tool to inspect fonts and code maps and
to try out transliteration of escaped Gaelic text.

	twcli -fontdir ./fonts -system

	tw > fonts Sean
	tw > font Seanchlo-Bold
	tw > tr Dia \'s Muire \.dhuit
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/textwriter/core"
	"github.com/npillmayer/textwriter/core/fontspec"
	"github.com/npillmayer/textwriter/core/glyphmap"
	"github.com/npillmayer/textwriter/engine/translit"
	"github.com/pterm/pterm"
)

// tracer traces with key 'textwriter.cli'
func tracer() tracing.Trace {
	return tracing.Select("textwriter.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontdirs := flag.String("fontdir", "", "Font directories, separated by the OS path list separator")
	system := flag.Bool("system", false, "Add installed system fonts")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		"trace.textwriter.cli":      *tlevel,
		"trace.textwriter.fonts":    *tlevel,
		"trace.textwriter.glyphs":   *tlevel,
		"trace.textwriter.translit": *tlevel,
		"fontdirs":                  *fontdirs,
		"systemfonts":               fmt.Sprintf("%v", *system),
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the TextWriter CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{
		fonts:    fontspec.NewInventory(),
		registry: glyphmap.NewRegistry(),
	}
	intp.registry.Register(glyphmap.NewUnicodeMap(fontspec.UnicodeTag, glyphmap.AccentedVowels))
	intp.registry.Register(glyphmap.NewUnicodeMap(fontspec.UnicodeTag, glyphmap.Seanchlo))
	intp.translator = translit.New(intp.registry)
	if n, err := intp.fonts.LoadConfigured(conf); err != nil {
		core.UserError(err)
		os.Exit(2)
	} else {
		pterm.Info.Printfln("%d fonts in inventory", n)
	}
	//
	// set up REPL
	repl, err := readline.New("tw > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl       *readline.Instance
	fonts      *fontspec.Inventory
	registry   *glyphmap.Registry
	translator *translit.Translator
	font       string // current font
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command codes
const (
	QUIT int = iota
	HELP
	FONTS
	FONT
	SPECS
	MAPS
	TRANSLATE
)

// Command is a parsed input line: a command code and the rest of the line.
type Command struct {
	code int
	arg  string
}

func parseCommand(line string) Command {
	word, arg := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		word, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	tracer().Debugf("parse command = %q, arg = %q", word, arg)
	cmd := Command{arg: arg}
	switch strings.ToLower(word) {
	case "quit", "exit":
		cmd.code = QUIT
	case "fonts":
		cmd.code = FONTS
	case "font":
		cmd.code = FONT
	case "specs", "specifiers":
		cmd.code = SPECS
	case "maps":
		cmd.code = MAPS
	case "tr", "translate":
		cmd.code = TRANSLATE
	default:
		cmd.code = HELP
	}
	return cmd
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case FONTS:
		names := intp.fonts.Complete(cmd.arg)
		for _, n := range names {
			pterm.Println(n)
		}
		pterm.Info.Printfln("%d fonts", len(names))
	case FONT:
		if cmd.arg == "" {
			pterm.Printfln("current font: %q", intp.font)
			break
		}
		if _, err := intp.fonts.Font(cmd.arg); err != nil {
			pterm.Warning.Printfln("font %q is not in inventory, using its name only", cmd.arg)
		}
		intp.font = fontspec.NormalizeName(cmd.arg)
	case SPECS:
		pterm.Printfln("%s", strings.Join(intp.specifiers(), " | "))
	case MAPS:
		for _, k := range intp.registry.Keys() {
			pterm.Printfln("%q: %d code maps", k, len(intp.registry.MapsFor(k)))
		}
	case TRANSLATE:
		if intp.font == "" {
			return false, core.Error(core.EMISSING, "no font set, use 'font <name>'")
		}
		out := intp.translator.Translate(cmd.arg, intp.specifiers()...)
		pterm.Println(out)
		pterm.Printfln("%U", []rune(out))
	}
	return false, nil
}

func (intp *Intp) specifiers() []string {
	if intp.font == "" {
		return nil
	}
	return intp.fonts.Specifiers(intp.font)
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	fonts [prefix]   list fonts in inventory
	font [name]      set or show the current font
	specs            show font specifiers of the current font
	maps             list code map keys
	tr <text>        translate text for the current font
	quit             leave the CLI

	Escapes: \'a (fada), \.b (séimhiú), \s (long s), \r, & (Tironian et), \\
	`)
}
