// Package cookies detects which installed browser the extractor can read
// cookies from. Some sites refuse anonymous downloads, so the first browser
// the extractor accepts is remembered and reused on later runs.
package cookies

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/loutube-cli/loutube/constant"
	"github.com/loutube-cli/loutube/extractor"
	"github.com/loutube-cli/loutube/filesystem"
	"github.com/loutube-cli/loutube/key"
	"github.com/loutube-cli/loutube/log"
	"github.com/loutube-cli/loutube/runner"
	"github.com/loutube-cli/loutube/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// candidates lists the browsers to probe per platform, most common first.
// The names are the values the extractor's --cookies-from-browser accepts.
var candidates = map[string][]string{
	constant.Linux:   {"brave", "firefox", "chrome", "chromium", "edge"},
	constant.Darwin:  {"safari", "chrome", "firefox", "brave", "edge"},
	constant.Windows: {"chrome", "firefox", "edge", "brave"},
}

// cachedDetection is the persisted outcome of a probe run.
type cachedDetection struct {
	Browser string `json:"browser"`
}

var detectionCacher = gache.New[*cachedDetection](
	&gache.Options{
		Path:       where.Cookies(),
		Lifetime:   time.Hour * 24 * 7,
		FileSystem: &filesystem.GacheFs{},
	},
)

// Candidates returns the probe order for the current platform.
func Candidates() []string {
	return candidates[runtime.GOOS]
}

// Detect returns the browser to pass to --cookies-from-browser, if any.
//
// An explicit cookies.from_browser setting always wins and is trusted
// without probing. With detection disabled and no explicit browser, no
// cookies are used. Otherwise each candidate browser is probed through the
// extractor and the first accepted one is cached for a week.
func Detect(ctx context.Context, run runner.Runner) mo.Option[string] {
	if browser := viper.GetString(key.CookiesFromBrowser); browser != "" {
		return mo.Some(browser)
	}

	if !viper.GetBool(key.CookiesDetect) {
		return mo.None[string]()
	}

	if cached, expired, err := detectionCacher.Get(); err == nil && !expired && cached != nil {
		if cached.Browser == "" {
			return mo.None[string]()
		}
		return mo.Some(cached.Browser)
	}

	detected := probe(ctx, run, Candidates())
	if err := detectionCacher.Set(&cachedDetection{Browser: detected.OrElse("")}); err != nil {
		log.Warnf("cookies: persisting detection result: %s", err)
	}

	return detected
}

// Reset forgets the cached detection so the next Detect probes again. The
// cacher keeps its state in memory once loaded, so it is emptied before the
// backing file is removed.
func Reset() error {
	if err := detectionCacher.Set(nil); err != nil {
		return err
	}

	exists, err := filesystem.API().Exists(where.Cookies())
	if err != nil || !exists {
		return err
	}
	return filesystem.API().Remove(where.Cookies())
}

// probe asks the extractor to open each browser's cookie store in turn,
// returning the first one it accepts.
func probe(ctx context.Context, run runner.Runner, browsers []string) mo.Option[string] {
	var failures []string

	for _, browser := range browsers {
		cmd := runner.Command{
			Name: extractor.Binary(),
			Args: []string{"--cookies-from-browser", browser, "--version"},
		}

		if _, err := run.Output(ctx, cmd); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %s", browser, err))
			continue
		}

		log.Infof("cookies: using browser %q", browser)
		return mo.Some(browser)
	}

	if len(failures) > 0 {
		log.Debugf("cookies: no browser accepted: %s", strings.Join(failures, "; "))
	}

	return mo.None[string]()
}
