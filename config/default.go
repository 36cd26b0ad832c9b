// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/loutube-cli/loutube/color"
	"github.com/loutube-cli/loutube/constant"
	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Loutube + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DownloadFormat, "bestvideo[vcodec^=avc1]+bestaudio[acodec^=mp4a]/bestvideo+bestaudio/best",
		"Default format selector passed to the extractor when no format ids are chosen")
	register(key.DownloadMergeFormat, "mp4", "Container used when merging separate video and audio streams")
	register(key.DownloadOutputTemplate, "%(title)s.%(ext)s", "Extractor output filename template")
	register(key.DownloadVideoDir, "", "Destination directory for video downloads.\nEmpty means ~/Videos/loutube")
	register(key.DownloadAudioDir, "", "Destination directory for audio downloads.\nEmpty means ~/Music/loutube")
	register(key.DownloadAudioFormat, "mp3", "Target codec for audio extraction")
	register(key.DownloadAudioQuality, "0", "Audio extraction quality, 0 (best) to 10 (worst)")
	register(key.SponsorblockEnable, true, "Ask the extractor to remove SponsorBlock-annotated segments")
	register(key.SponsorblockCategories, []string{"all"}, "SponsorBlock categories to remove")
	register(key.StreamPlayer, "vlc", "Media player the stream pipe is connected to")
	register(key.StreamDefaultFormat, "best[height>=720]/best", "Format selector used for streaming when none is chosen")
	register(key.StreamNetworkCaching, 3000, "Player network cache in milliseconds")
	register(key.StreamLiveFromStart, false, "Start livestreams from the beginning instead of the live edge")
	register(key.CookiesDetect, true, "Probe installed browsers for usable cookies")
	register(key.CookiesFromBrowser, "", "Browser to load cookies from.\nEmpty enables automatic detection")
	register(key.HistorySaveOnSuccess, true, "Record completed operations in the history file")
	register(key.HistoryRecentLimit, 10, "Number of entries shown by the recent command")
	register(key.ExtractorBinary, "yt-dlp", "Extractor binary resolved on PATH")
	register(key.TranscoderBinary, "ffmpeg", "Transcoder binary resolved on PATH")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
