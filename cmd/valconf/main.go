// Command valconf loads a YAML or JSON configuration file, applies
// import/template resolution and CLI-style overrides, and prints the
// result as YAML or JSON. It is the informative CLI surface named at
// interface level by the core packages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-valconf/valconf/config"
	"github.com/go-valconf/valconf/json"
	"github.com/go-valconf/valconf/value"
	"github.com/go-valconf/valconf/yaml"
)

const (
	exitOK     = 0
	exitError  = 1
	exitUsage  = 64
	exitIOErr  = 74
	exitConfig = 78
)

type settingList []string

func (s *settingList) String() string { return strings.Join(*s, ",") }
func (s *settingList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("valconf", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	query := fs.String("query", "", "dotted path to print instead of the whole document")
	indent := fs.Int("indent", 2, "output indent width")
	margin := fs.Int("margin", 80, "JSON array wrap margin")
	precision := fs.Int("precision", -1, "max significant digits for JSON doubles")
	quoteKeys := fs.Bool("quote_keys", true, "quote JSON object keys")
	trimZeroes := fs.Bool("trim_zeroes", false, "trim trailing zeroes in JSON doubles")
	strict := fs.Bool("strict", false, "reject comments/trailing commas in JSON input")
	showDeps := fs.Bool("deps", false, "print resolved import paths instead of the document")
	showNames := fs.Bool("names", false, "print top-level member names instead of the document")
	asYAML := fs.Bool("yaml", false, "emit YAML instead of JSON")
	variant := fs.String("variant", "", "config variant suffix, e.g. \"dev\" for base_dev.yml")
	var sets settingList
	fs.Var(&sets, "set", "apply a \"path[=jsonValue]\" override; may be repeated")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: valconf [flags] <config-file>")
		return exitUsage
	}
	path := fs.Arg(0)

	v, loadResult, err := config.LoadConfig(path, config.LoadInfo{Variant: *variant, Strict: *strict})
	if err != nil {
		log.Printf("valconf: %v", err)
		if v.IsNull() {
			return exitConfig
		}
	}

	if err := config.ApplySettings(sets, &v); err != nil {
		log.Printf("valconf: %v", err)
		return exitError
	}

	if *showDeps {
		for _, imp := range loadResult.Imports {
			fmt.Println(imp)
		}
		return exitOK
	}
	if *showNames {
		for i := 0; i < v.NumMembers(); i++ {
			fmt.Println(v.MemberName(i))
		}
		return exitOK
	}

	target := v
	if *query != "" {
		target = value.MemberPath(v, *query)
	}

	var out string
	if *asYAML {
		out, err = yaml.AsYAML(target, *indent)
	} else {
		out, err = json.AsJSON(target, json.FormatOptions{
			Indent:       *indent,
			QuoteKeys:    *quoteKeys,
			ArrayMargin:  *margin,
			MaxPrecision: *precision,
			TrimZeroes:   *trimZeroes,
		})
	}
	if err != nil {
		log.Printf("valconf: %v", err)
		return exitIOErr
	}
	fmt.Println(out)
	return exitOK
}
