// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download Assembly - these keys shape the argument vectors built for the external extractor.
const (
	DownloadFormat         = "download.format"
	DownloadMergeFormat    = "download.merge_format"
	DownloadOutputTemplate = "download.output_template"
	DownloadVideoDir       = "download.video_dir"
	DownloadAudioDir       = "download.audio_dir"
	DownloadAudioFormat    = "download.audio_format"
	DownloadAudioQuality   = "download.audio_quality"
)

// SponsorBlock Integration - these keys control segment-skip annotations consumed by the extractor.
const (
	SponsorblockEnable     = "sponsorblock.enable"
	SponsorblockCategories = "sponsorblock.categories"
)

// Streaming - these keys configure the extractor-to-player pipe.
const (
	StreamPlayer         = "stream.player"
	StreamDefaultFormat  = "stream.default_format"
	StreamNetworkCaching = "stream.network_caching"
	StreamLiveFromStart  = "stream.live_from_start"
)

// Browser Cookie Detection - these keys govern the cookie source passed to the extractor.
const (
	CookiesDetect      = "cookies.detect"
	CookiesFromBrowser = "cookies.from_browser"
)

// History Tracking - these keys configure the persistence of completed operations.
const (
	HistorySaveOnSuccess = "history.save_on_success"
	HistoryRecentLimit   = "history.recent_limit"
)

// External Binaries - these keys name the collaborating tools resolved on PATH.
const (
	ExtractorBinary  = "extractor.binary"
	TranscoderBinary = "transcoder.binary"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
