package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	anyrender "github.com/goliatone/go-anyrender"
)

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	var contextFiles stringList
	var searchPaths stringList

	engineName := flag.String("engine", "", "engine to render with (extension dispatch when empty)")
	output := flag.String("output", "", "output file (stdout when empty)")
	encoding := flag.String("encoding", "utf-8", "template file charset")
	safe := flag.Bool("safe", false, "return the template unchanged instead of failing on render errors")
	force := flag.Bool("force", false, "overwrite an existing output file without asking")
	listEngines := flag.Bool("list-engines", false, "list registered engines and exit")
	flag.Var(&contextFiles, "context", "context file (YAML or JSON); repeatable, later files override earlier keys")
	flag.Var(&searchPaths, "path", "template search directory; repeatable")
	flag.Parse()

	if *listEngines {
		for _, name := range anyrender.DefaultRegistry().List() {
			fmt.Println(name)
		}
		return
	}

	if flag.NArg() != 1 {
		log.Fatalf("usage: anyrender [flags] TEMPLATE (use - to read template content from stdin)")
	}
	template := flag.Arg(0)

	data, err := loadContexts(contextFiles)
	if err != nil {
		log.Fatalf("Failed to load context: %v", err)
	}

	options := []anyrender.Option{
		anyrender.WithSearchPaths(searchPaths...),
		anyrender.WithEncoding(*encoding),
	}
	if *engineName != "" {
		options = append(options, anyrender.WithEngine(*engineName))
	}
	if *safe {
		options = append(options, anyrender.WithSafe())
	}

	ctx := context.Background()

	var out string
	if template == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
		out, err = anyrender.RenderString(ctx, string(content), data, options...)
		if err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
	} else {
		out, err = anyrender.Render(ctx, template, data, options...)
		if err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
	}

	if *output == "" {
		fmt.Print(out)
		return
	}

	if !*force && fileExists(*output) {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Output file %s exists. Overwrite?", *output),
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			log.Fatalf("Failed to confirm overwrite: %v", err)
		}
		if !overwrite {
			return
		}
	}

	if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Rendered output written to %s\n", *output)
}

// loadContexts reads each context file and merges the mappings shallowly by
// key, later files overriding earlier ones. YAML is a superset of JSON, so
// both formats parse through the same decoder.
func loadContexts(files []string) (map[string]any, error) {
	merged := map[string]any{}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read context file %q: %w", file, err)
		}
		data := map[string]any{}
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse context file %q: %w", file, err)
		}
		for key, value := range data {
			merged[key] = value
		}
	}
	return merged, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
