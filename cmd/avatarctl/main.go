// Command avatarctl inspects and edits the avatar configuration file
// consumed by the agent. It is an operator tool; the agent itself only
// ever reads the file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type configFile struct {
	DefaultAvatar string                 `json:"default_avatar"`
	Avatars       map[string]avatarEntry `json:"avatars"`
}

type avatarEntry struct {
	Provider            string `json:"provider"`
	Enabled             *bool  `json:"enabled,omitempty"`
	AvatarID            string `json:"avatar_id,omitempty"`
	Name                string `json:"name,omitempty"`
	ModelPath           string `json:"model_path,omitempty"`
	ParticipantIdentity string `json:"participant_identity,omitempty"`
	ParticipantName     string `json:"participant_name,omitempty"`
}

func main() {
	path := flag.String("config", "avatar_config.json", "Path to the avatar configuration file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := load(*path)
	if err != nil {
		log.Fatal("Error while reading avatar config: ", err)
	}

	switch args[0] {
	case "list":
		list(cfg)
	case "show":
		requireName(args)
		show(cfg, args[1])
	case "enable":
		requireName(args)
		setEnabled(cfg, args[1], true)
		save(*path, cfg)
	case "disable":
		requireName(args)
		setEnabled(cfg, args[1], false)
		save(*path, cfg)
	case "set-default":
		requireName(args)
		if _, ok := cfg.Avatars[args[1]]; !ok {
			log.Fatalf("Unknown avatar %q", args[1])
		}
		cfg.DefaultAvatar = args[1]
		save(*path, cfg)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: avatarctl [-config path] list | show <name> | enable <name> | disable <name> | set-default <name>")
}

func requireName(args []string) {
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}
}

func load(path string) (*configFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg configFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Avatars == nil {
		cfg.Avatars = map[string]avatarEntry{}
	}
	return &cfg, nil
}

func save(path string, cfg *configFile) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal("Error while encoding avatar config: ", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		log.Fatal("Error while writing avatar config: ", err)
	}
}

func list(cfg *configFile) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Provider", "Status", "Default"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	names := make([]string, 0, len(cfg.Avatars))
	for name := range cfg.Avatars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := cfg.Avatars[name]
		status := color.New(color.FgGreen).Render("enabled")
		if entry.Enabled != nil && !*entry.Enabled {
			status = color.New(color.FgRed).Render("disabled")
		}
		isDefault := ""
		if name == cfg.DefaultAvatar {
			isDefault = "*"
		}
		table.Append([]string{name, entry.Provider, status, isDefault})
	}
	table.Render()
}

func show(cfg *configFile, name string) {
	entry, ok := cfg.Avatars[name]
	if !ok {
		log.Fatalf("Unknown avatar %q", name)
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		log.Fatal("Error while encoding avatar entry: ", err)
	}
	fmt.Println(string(data))
}

func setEnabled(cfg *configFile, name string, enabled bool) {
	entry, ok := cfg.Avatars[name]
	if !ok {
		log.Fatalf("Unknown avatar %q", name)
	}
	entry.Enabled = &enabled
	cfg.Avatars[name] = entry
}
