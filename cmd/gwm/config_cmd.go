package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gwm-cli/gwm/internal/config"
	"github.com/gwm-cli/gwm/internal/output"
)

func newConfigCmd() *cobra.Command {
	var (
		initConfig bool
		global     bool
		setKV      string
		getKey     string
		list       bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit configuration",
		Long: `Inspect and edit gwm configuration.

Configuration is merged from the global file (~/.config/gwm/config.toml)
and the repository-local file (.gwm.toml); local values win. Writes go
to the local file unless --global is given.

Recognized keys: ` + strings.Join(config.KeyNames(), ", ") + `.`,
		Example: `  gwm config --init                     # write a default .gwm.toml
  gwm config --list                     # show the merged configuration
  gwm config --get prefix
  gwm config --set prefix=detect
  gwm config --global --set worktree_dir=../trees
  gwm config --set 'post_commands=[{"label":"deps","commands":["npm install"]}]'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			a, err := newApp(ctx)
			if err != nil {
				return err
			}

			switch {
			case initConfig:
				return runConfigInit(a, out, global)
			case setKV != "":
				return runConfigSet(a, out, global, setKV)
			case getKey != "":
				return runConfigGet(a, out, getKey)
			case list:
				return runConfigList(a, out)
			default:
				return cmd.Help()
			}
		},
	}

	cmd.Flags().BoolVar(&initConfig, "init", false, "Write a default configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "Operate on the global file instead of the local one")
	cmd.Flags().StringVar(&setKV, "set", "", "Set a key, as key=value")
	cmd.Flags().StringVar(&getKey, "get", "", "Print the merged value of a key")
	cmd.Flags().BoolVar(&list, "list", false, "Print the merged configuration as TOML")
	cmd.MarkFlagsMutuallyExclusive("init", "set", "get", "list")

	return cmd
}

func runConfigInit(a *app, out *output.Printer, global bool) error {
	if global {
		if a.store.HasGlobal() {
			return fmt.Errorf("global config already exists: %s", a.store.GlobalPath)
		}
		if err := a.store.SaveGlobal(config.Default()); err != nil {
			return err
		}
		out.Printf("Wrote %s\n", a.store.GlobalPath)
		return nil
	}

	if _, err := a.store.InitLocal(nil); err != nil {
		return err
	}
	out.Printf("Wrote %s\n", a.store.LocalPath)
	return nil
}

func runConfigSet(a *app, out *output.Printer, global bool, kv string) error {
	name, raw, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("--set expects key=value, got %q", kv)
	}
	key, ok := config.LookupKey(name)
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", name, strings.Join(config.KeyNames(), ", "))
	}

	var (
		cfg  config.Config
		err  error
		save func(config.Config) error
		path string
	)
	if global {
		cfg, err = a.store.GlobalConfig()
		save, path = a.store.SaveGlobal, a.store.GlobalPath
	} else {
		cfg, err = a.store.LocalConfig()
		save, path = a.store.SaveLocal, a.store.LocalPath
	}
	if err != nil {
		return err
	}

	if err := key.Set(&cfg, config.ParseValue(raw)); err != nil {
		return err
	}
	if err := save(cfg); err != nil {
		return err
	}
	out.Printf("Set %s in %s\n", name, path)
	return nil
}

func runConfigGet(a *app, out *output.Printer, name string) error {
	key, ok := config.LookupKey(name)
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", name, strings.Join(config.KeyNames(), ", "))
	}
	cfg, err := a.store.Load()
	if err != nil {
		return err
	}
	out.Println(key.Get(cfg))
	return nil
}

func runConfigList(a *app, out *output.Printer) error {
	cfg, err := a.store.Load()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	out.Printf("%s", buf.String())
	return nil
}
