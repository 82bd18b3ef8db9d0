// Package catalog holds the static lists of tools devsetup knows how to install.
package catalog

import (
	"fmt"
	"path"
	"strings"
)

// Item is one installable tool.
//   - Name: label shown to the operator.
//   - Key: selection key, unique within its category.
//   - CheckCommand: succeeds with non-empty output when the tool is installed.
//   - InstallCommand: installs the tool; unused when Archive is set.
//   - Archive: download-and-unpack source for tools that are not shipped as casks.
type Item struct {
	Name           string
	Key            string
	Description    string
	CheckCommand   string
	InstallCommand string
	Archive        *ArchiveSource
}

// ArchiveSource describes an archive whose matching files are copied into place.
// It is either a direct URL or an asset of a GitHub release; the release tag
// is chosen at install time.
type ArchiveSource struct {
	URL     string
	Repo    string // owner/name on GitHub
	Asset   string
	Pattern []string // glob patterns matched against file base names, e.g. "*.ttf"
}

// Name is the archive file name.
func (a ArchiveSource) Name() string {
	if a.Asset != "" {
		return a.Asset
	}
	return path.Base(a.URL)
}

// Category groups the items offered in one checklist.
type Category struct {
	Key    string
	Title  string // plural noun used in log lines, e.g. "browsers"
	Prompt string
	Items  []Item
}

// FontsDirEnv is exported to check commands so they can locate installed fonts.
const FontsDirEnv = "DEVSETUP_FONTS_DIR"

func appCheck(app string) string {
	return fmt.Sprintf(`defaults read "/Applications/%s.app/Contents/Info.plist" CFBundleShortVersionString`, app)
}

func cask(name string) string {
	return "brew install --cask " + name
}

func fontCheck(file string) string {
	return fmt.Sprintf(`ls "$%s/%s"`, FontsDirEnv, file)
}

// FontsKey is the key of the fonts category.
const FontsKey = "fonts"

// ArchiveFont builds a fonts item downloaded from url. file is one font file
// the archive installs.
func ArchiveFont(name, url, file string) Item {
	return Item{
		Name:         name,
		Key:          strings.ToLower(strings.Join(strings.Fields(name), "-")),
		CheckCommand: fontCheck(file),
		Archive:      &ArchiveSource{URL: url, Pattern: fontPatterns},
	}
}

const nerdFontsRepo = "ryanoasis/nerd-fonts"

func nerdFont(asset string) *ArchiveSource {
	return &ArchiveSource{Repo: nerdFontsRepo, Asset: asset, Pattern: fontPatterns}
}

var fontPatterns = []string{"*.ttf", "*.otf"}

var categories = []Category{
	{
		Key:    "browsers",
		Title:  "browsers",
		Prompt: "Select the browsers you want to install",
		Items: []Item{
			{Name: "Google Chrome", Key: "chrome", CheckCommand: appCheck("Google Chrome"), InstallCommand: cask("google-chrome")},
			{Name: "Firefox", Key: "firefox", CheckCommand: appCheck("Firefox"), InstallCommand: cask("firefox")},
			{Name: "Brave", Key: "brave", CheckCommand: appCheck("Brave Browser"), InstallCommand: cask("brave-browser")},
			{Name: "Microsoft Edge", Key: "edge", CheckCommand: appCheck("Microsoft Edge"), InstallCommand: cask("microsoft-edge")},
		},
	},
	{
		Key:    "editors",
		Title:  "code editors",
		Prompt: "Select the code editors you want to install",
		Items: []Item{
			{Name: "Visual Studio Code", Key: "code", CheckCommand: "code -v", InstallCommand: cask("visual-studio-code")},
			{Name: "Cursor", Key: "cursor", CheckCommand: "cursor -v", InstallCommand: cask("cursor")},
		},
	},
	{
		Key:    "terminals",
		Title:  "terminals",
		Prompt: "Select the terminals you want to install",
		Items: []Item{
			{Name: "Alacritty", Key: "alacritty", CheckCommand: "command -v alacritty", InstallCommand: cask("alacritty")},
			{Name: "iTerm2", Key: "iterm2", CheckCommand: "ls /Applications/iTerm.app", InstallCommand: cask("iterm2")},
			{Name: "Hyper", Key: "hyper", CheckCommand: "command -v hyper", InstallCommand: cask("hyper")},
			{Name: "Warp", Key: "warp", CheckCommand: "ls /Applications/Warp.app", InstallCommand: cask("warp")},
			{Name: "WezTerm", Key: "wezterm", CheckCommand: "command -v wezterm", InstallCommand: cask("wezterm")},
			{Name: "Kitty", Key: "kitty", CheckCommand: "command -v kitty", InstallCommand: cask("kitty")},
		},
	},
	{
		Key:    "communication",
		Title:  "communication apps",
		Prompt: "Select the communication apps you want to install",
		Items: []Item{
			{Name: "Slack", Key: "slack", Description: "Team chat with a large integration ecosystem.", CheckCommand: appCheck("Slack"), InstallCommand: cask("slack")},
			{Name: "Discord", Key: "discord", Description: "Voice, video and text chat for communities.", CheckCommand: appCheck("Discord"), InstallCommand: cask("discord")},
			{Name: "Microsoft Teams", Key: "teams", Description: "Chat and meetings for Microsoft 365 organisations.", CheckCommand: appCheck("Microsoft Teams"), InstallCommand: cask("microsoft-teams")},
			{Name: "Google Chat", Key: "chat", Description: "Messaging for Google Workspace.", CheckCommand: appCheck("Google Chat"), InstallCommand: cask("google-chat")},
		},
	},
	{
		Key:    "ai",
		Title:  "AI tools",
		Prompt: "Select the AI tools you want to install",
		Items: []Item{
			{Name: "ChatGPT", Key: "chatgpt", Description: "OpenAI's ChatGPT desktop application.", CheckCommand: appCheck("ChatGPT"), InstallCommand: cask("chatgpt")},
			{Name: "Claude", Key: "claude", Description: "Anthropic's Claude desktop application.", CheckCommand: appCheck("Claude"), InstallCommand: cask("claude")},
		},
	},
	{
		Key:    "api",
		Title:  "API clients",
		Prompt: "Select the API clients you want to install",
		Items: []Item{
			{Name: "Postman", Key: "postman", Description: "API platform for building and testing requests.", CheckCommand: appCheck("Postman"), InstallCommand: cask("postman")},
			{Name: "Insomnia", Key: "insomnia", Description: "Open source REST, GraphQL and gRPC client.", CheckCommand: appCheck("Insomnia"), InstallCommand: cask("insomnia")},
			{Name: "HTTPie", Key: "httpie", Description: "HTTPie desktop client.", CheckCommand: appCheck("HTTPie"), InstallCommand: cask("httpie")},
		},
	},
	{
		Key:    "database",
		Title:  "database clients",
		Prompt: "Select the database clients you want to install",
		Items: []Item{
			{Name: "DBeaver", Key: "dbeaver", Description: "Universal SQL client.", CheckCommand: appCheck("DBeaver"), InstallCommand: cask("dbeaver-community")},
			{Name: "pgAdmin", Key: "pgadmin", Description: "PostgreSQL administration.", CheckCommand: appCheck("pgAdmin 4"), InstallCommand: cask("pgadmin4")},
			{Name: "TablePlus", Key: "tableplus", Description: "Native client for relational databases.", CheckCommand: appCheck("TablePlus"), InstallCommand: cask("tableplus")},
			{Name: "MongoDB Compass", Key: "mongodb-compass", Description: "GUI for MongoDB.", CheckCommand: appCheck("MongoDB Compass"), InstallCommand: cask("mongodb-compass")},
		},
	},
	{
		Key:    "design",
		Title:  "design tools",
		Prompt: "Select the design tools you want to install",
		Items: []Item{
			{Name: "Figma", Key: "figma", Description: "Collaborative interface design.", CheckCommand: appCheck("Figma"), InstallCommand: cask("figma")},
			{Name: "Sketch", Key: "sketch", Description: "Vector design for macOS.", CheckCommand: appCheck("Sketch"), InstallCommand: cask("sketch")},
			{Name: "Zeplin", Key: "zeplin", Description: "Design handoff for developers.", CheckCommand: appCheck("Zeplin"), InstallCommand: cask("zeplin")},
		},
	},
	{
		Key:    "productivity",
		Title:  "productivity tools",
		Prompt: "Select the productivity tools you want to install",
		Items: []Item{
			{Name: "Notion", Key: "notion", Description: "Notes, docs and tasks in one workspace.", CheckCommand: appCheck("Notion"), InstallCommand: cask("notion")},
			{Name: "Todoist", Key: "todoist", Description: "Task manager.", CheckCommand: appCheck("Todoist"), InstallCommand: cask("todoist")},
			{Name: "Obsidian", Key: "obsidian", Description: "Markdown knowledge base.", CheckCommand: appCheck("Obsidian"), InstallCommand: cask("obsidian")},
			{Name: "Loop", Key: "loop", Description: "Window management with a radial menu.", CheckCommand: appCheck("Loop"), InstallCommand: cask("loop")},
			{Name: "Alfred", Key: "alfred", Description: "Launcher and workflow automation.", CheckCommand: appCheck("Alfred 5"), InstallCommand: cask("alfred")},
			{Name: "Raycast", Key: "raycast", Description: "Extendable launcher.", CheckCommand: appCheck("Raycast"), InstallCommand: cask("raycast")},
			{Name: "Rectangle", Key: "rectangle", Description: "Window snapping with keyboard shortcuts.", CheckCommand: appCheck("Rectangle"), InstallCommand: cask("rectangle")},
			{Name: "1Password", Key: "1password", Description: "Password manager.", CheckCommand: appCheck("1Password"), InstallCommand: cask("1password")},
			{Name: "Evernote", Key: "evernote", Description: "Note taking.", CheckCommand: appCheck("Evernote"), InstallCommand: cask("evernote")},
			{Name: "Bear", Key: "bear", Description: "Markdown notes for Apple devices.", CheckCommand: appCheck("Bear"), InstallCommand: cask("bear")},
		},
	},
	{
		Key:    FontsKey,
		Title:  "developer fonts",
		Prompt: "Select the Nerd Fonts you want to install",
		Items: []Item{
			{
				Name:         "JetBrains Mono Nerd Font",
				Key:          "jetbrains-mono",
				CheckCommand: fontCheck("JetBrainsMonoNerdFont-Regular.ttf"),
				Archive:      nerdFont("JetBrainsMono.tar.xz"),
			},
			{
				Name:         "Fira Code Nerd Font",
				Key:          "fira-code",
				CheckCommand: fontCheck("FiraCodeNerdFont-Regular.ttf"),
				Archive:      nerdFont("FiraCode.zip"),
			},
			{
				Name:         "Hack Nerd Font",
				Key:          "hack",
				CheckCommand: fontCheck("HackNerdFont-Regular.ttf"),
				Archive:      nerdFont("Hack.tar.xz"),
			},
			{
				Name:         "Meslo Nerd Font",
				Key:          "meslo",
				Description:  "The font recommended by powerlevel10k.",
				CheckCommand: fontCheck("MesloLGSNerdFont-Regular.ttf"),
				Archive:      nerdFont("Meslo.tar.xz"),
			},
		},
	},
}

// JSPackageManagers is offered after Node.js is set up, outside the main category order.
var JSPackageManagers = Category{
	Key:    "js-package-managers",
	Title:  "JavaScript package managers",
	Prompt: "Select the package managers you want to install",
	Items: []Item{
		{Name: "yarn", Key: "yarn", CheckCommand: "yarn --version", InstallCommand: "brew install yarn"},
		{Name: "pnpm", Key: "pnpm", CheckCommand: "pnpm --version", InstallCommand: "brew install pnpm"},
		{Name: "bun", Key: "bun", CheckCommand: "bun --version", InstallCommand: "brew install oven-sh/bun/bun"},
	},
}

// Categories returns the deferred categories in the order they are offered.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// All returns every category including JSPackageManagers.
func All() []Category {
	return append(Categories(), JSPackageManagers)
}

// Keys returns the key of every category.
func Keys() []string {
	all := All()
	keys := make([]string, 0, len(all))
	for _, c := range all {
		keys = append(keys, c.Key)
	}
	return keys
}

// Lookup finds a category by key.
func Lookup(key string) (Category, bool) {
	for _, c := range All() {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}
