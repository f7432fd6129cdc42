// Command pagina plans presentation pages from lecture scripts, either as a
// one-shot file converter or as the upload demo server.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/pagina"
	"github.com/tsawler/pagina/advisory"
	"github.com/tsawler/pagina/engine"
	"github.com/tsawler/pagina/htmltext"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
	"github.com/tsawler/pagina/server"
)

func main() {
	// A local .env is a convenience, not a requirement.
	godotenv.Load()

	app := &cli.App{
		Name:  "pagina",
		Usage: "plan presentation pages from lecture scripts",
		Commands: []*cli.Command{
			paginateCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func paginateCommand() *cli.Command {
	return &cli.Command{
		Name:      "paginate",
		Usage:     "plan pages for a script file (.docx, .html or plain text)",
		ArgsUsage: "<script-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rules",
				Usage: "path to a YAML rules file",
			},
			&cli.StringFlag{
				Name:  "advisor-url",
				Usage: "classification service endpoint",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: json or yaml",
				Value: "json",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output file (default stdout)",
			},
		},
		Action: runPaginate,
	}
}

func runPaginate(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one script file expected")
	}
	input := c.Args().First()

	planner, err := plannerFor(input)
	if err != nil {
		return err
	}
	if path := c.String("rules"); path != "" {
		planner = planner.WithRulesFile(path)
	}
	if url := c.String("advisor-url"); url != "" {
		planner = planner.WithAdvisor(advisory.NewHTTPClient(url))
	}

	result, err := planner.Plan(c.Context)
	if err != nil {
		return err
	}
	return writeResult(result, c.String("format"), c.String("out"))
}

// plannerFor picks the extraction path from the file extension. Anything
// that is not DOCX or HTML is treated as plain text.
func plannerFor(input string) (*pagina.Planner, error) {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".docx":
		return pagina.FromDocx(input), nil
	case ".html", ".htm":
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		lines, err := htmltext.Script(f)
		if err != nil {
			return nil, err
		}
		return pagina.FromLines(lines), nil
	default:
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("reading script: %w", err)
		}
		return pagina.Script(string(data)), nil
	}
}

func writeResult(result *model.Result, format, out string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(result, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(result)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if out == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the script upload demo server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address (overrides PAGINA_ADDR)",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if addr := c.String("addr"); addr != "" {
		cfg.Addr = addr
	}

	r := rules.Default()
	if cfg.RulesPath != "" {
		if r, err = rules.Load(cfg.RulesPath); err != nil {
			return err
		}
	}

	eng, err := engine.New(r)
	if err != nil {
		return err
	}
	if cfg.AdvisorURL != "" {
		eng = eng.WithAdvisor(advisory.NewHTTPClient(cfg.AdvisorURL))
		log.Info("advisor enabled", "url", cfg.AdvisorURL)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(cfg, eng, log).Routes(),
	}

	log.Info("listening", "addr", cfg.Addr, "engine_version", engine.Version)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
