package mini

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/loutube-cli/loutube/editor"
	"github.com/loutube-cli/loutube/extractor"
	"github.com/loutube-cli/loutube/filesystem"
	"github.com/loutube-cli/loutube/icon"
	"github.com/loutube-cli/loutube/media"
	"github.com/loutube-cli/loutube/open"
	"github.com/loutube-cli/loutube/runner"
	"github.com/loutube-cli/loutube/style"
	"github.com/loutube-cli/loutube/util"
	"github.com/samber/lo"
)

type state int

const (
	urlInputState state = iota + 1
	modeSelectState
	formatSelectState
	editSelectState
	confirmState
	executeState
	quitState
)

// quitSentinel exits the prompt loop from any text input.
const quitSentinel = "q"

func (m *mini) handleURLInputState() error {
	title("Enter URL")

	in, err := getInput("URL:", func(s string) bool {
		if s == quitSentinel {
			return true
		}
		parsed, err := url.Parse(s)
		return err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https")
	})
	if err != nil {
		return err
	}

	if in.value == quitSentinel {
		m.newState(quitState)
		return nil
	}

	m.intent = media.Intent{URL: in.value}
	m.newState(modeSelectState)
	return nil
}

func (m *mini) handleModeSelectState() error {
	title("Choose Mode")

	modes := lo.Filter(media.Modes(), func(mode media.Mode, _ int) bool {
		// Live is detected from the probe, never chosen by hand.
		return mode != media.ModeLive
	})

	b, mode, err := menu("Mode:", modes, back)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.newState(quitState)
		return nil
	case back.eq(b):
		m.previousState()
		return nil
	}

	if err := checkDependencies(mode); err != nil {
		var missing *runner.MissingDependencyError
		if errors.As(err, &missing) {
			fail(err.Error())
			return nil
		}
		return err
	}

	m.intent.Mode = mode
	if mode == media.ModeEdit {
		m.newState(editSelectState)
	} else {
		m.newState(formatSelectState)
	}
	return nil
}

// checkDependencies resolves the external binaries one operation needs.
// Other menu paths stay usable when a binary for this one is missing.
func checkDependencies(mode media.Mode) error {
	switch mode {
	case media.ModeEdit:
		return runner.Resolve(editor.Binary())
	case media.ModeStream, media.ModeLive:
		if err := runner.Resolve(extractor.Binary()); err != nil {
			return err
		}
		return runner.Resolve(extractor.PlayerBinary())
	default:
		return runner.Resolve(extractor.Binary())
	}
}

var formatInputPattern = regexp.MustCompile(`^$|^[\w.-]+(\+[\w.-]+)?$`)

func (m *mini) handleFormatSelectState(ctx context.Context) error {
	formats := m.formats()

	if formats == nil {
		erase := progress("Probing formats..")
		probed, err := extractor.New(m.run).Probe(ctx, m.intent.URL)
		erase()
		if err != nil {
			return err
		}

		m.cachedFormats[m.intent.URL] = probed
		formats = probed
	}

	if formats.Live && m.intent.Mode == media.ModeStream {
		m.intent.Mode = media.ModeLive
	}

	if formats.Empty() {
		fail("No formats listed, the default selector will be used")
		m.intent.FormatIDs = nil
		m.newState(confirmState)
		return nil
	}

	title("Available Formats")
	printFormats(formats)

	in, err := getInput("Format id, id+id or empty for default:", func(s string) bool {
		return s == quitSentinel || formatInputPattern.MatchString(s)
	})
	if err != nil {
		return err
	}

	switch in.value {
	case quitSentinel:
		m.newState(quitState)
		return nil
	case "":
		m.intent.FormatIDs = nil
	default:
		ids := strings.Split(in.value, "+")
		if err := formats.Validate(ids); err != nil {
			fail(err.Error())
			return nil
		}
		m.intent.FormatIDs = ids
	}

	m.newState(confirmState)
	return nil
}

// printFormats renders the probed format table.
func printFormats(formats *media.FormatList) {
	dim := style.Fg(style.FaintColor)

	for _, record := range formats.Records {
		line := fmt.Sprintf(
			"%-8s %-6s %-12s %-10s %s",
			record.ID, record.Extension, record.Resolution, record.Size, dim(record.Note),
		)
		fmt.Println(line)
	}

	fmt.Println(dim(util.Quantify(len(formats.Records), "format", "formats")))
}

// editChoice is one entry of the edit operations menu.
type editChoice string

func (e editChoice) String() string {
	return string(e)
}

const (
	editTrim      editChoice = "Trim"
	editTranscode editChoice = "Transcode"
	editConvert   editChoice = "Convert container"
	editGIF       editChoice = "GIF"
	editLetterbox editChoice = "Letterbox"
)

func (m *mini) handleEditSelectState() error {
	if m.intent.URL == "" {
		in, err := getInput("File to edit:", func(s string) bool {
			if s == quitSentinel {
				return true
			}
			exists, err := filesystem.API().Exists(s)
			return err == nil && exists
		})
		if err != nil {
			return err
		}

		if in.value == quitSentinel {
			m.newState(quitState)
			return nil
		}

		m.intent.URL = in.value
	}

	title("Choose Edit")
	choices := []editChoice{editTrim, editTranscode, editConvert, editGIF, editLetterbox}

	b, choice, err := menu("Edit:", choices, back)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.newState(quitState)
		return nil
	case back.eq(b):
		m.intent.URL = ""
		m.previousState()
		return nil
	}

	op, err := m.buildEditOperation(choice)
	if err != nil {
		return err
	}
	if op == nil {
		// The per-operation prompt was quit.
		m.newState(quitState)
		return nil
	}

	if err := op.Validate(); err != nil {
		fail(err.Error())
		return nil
	}

	dest, err := m.editDestination(choice)
	if err != nil {
		return err
	}
	if dest == "" {
		m.newState(quitState)
		return nil
	}

	m.editOp = op
	m.editDest = dest
	m.intent.Mode = media.ModeEdit
	m.newState(confirmState)
	return nil
}

// buildEditOperation collects the parameters for one edit operation.
// A nil operation with a nil error means the user quit.
func (m *mini) buildEditOperation(choice editChoice) (editor.Operation, error) {
	freeform := func(s string) bool { return true }

	ask := func(message string) (string, bool, error) {
		in, err := getInput(message, freeform)
		if err != nil {
			return "", false, err
		}
		return in.value, in.value == quitSentinel, nil
	}

	switch choice {
	case editTrim:
		begin, quitted, err := ask("Start timestamp (HH:MM:SS):")
		if err != nil || quitted {
			return nil, err
		}
		end, quitted, err := ask("End timestamp (empty for end of file):")
		if err != nil || quitted {
			return nil, err
		}
		return editor.Trim{Start: begin, End: end}, nil

	case editTranscode:
		video, quitted, err := ask("Video codec (empty to copy):")
		if err != nil || quitted {
			return nil, err
		}
		audio, quitted, err := ask("Audio codec (empty to copy):")
		if err != nil || quitted {
			return nil, err
		}
		return editor.Transcode{VideoCodec: video, AudioCodec: audio}, nil

	case editConvert:
		return editor.Convert{}, nil

	case editGIF:
		fps, quitted, err := ask("Frame rate:")
		if err != nil || quitted {
			return nil, err
		}
		width, quitted, err := ask("Width in pixels:")
		if err != nil || quitted {
			return nil, err
		}
		return editor.GIF{FPS: atoi(fps), Width: atoi(width)}, nil

	case editLetterbox:
		width, quitted, err := ask("Target width:")
		if err != nil || quitted {
			return nil, err
		}
		height, quitted, err := ask("Target height:")
		if err != nil || quitted {
			return nil, err
		}
		return editor.Letterbox{Width: atoi(width), Height: atoi(height)}, nil
	}

	return nil, fmt.Errorf("unknown edit choice %q", choice)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// editDestination suggests an output path next to the source file.
func (m *mini) editDestination(choice editChoice) (string, error) {
	suggestion := util.FileStem(m.intent.URL) + "_edited" + extensionFor(choice, m.intent.URL)

	in, err := getInput(fmt.Sprintf("Output file (default %s):", suggestion), func(string) bool {
		return true
	})
	if err != nil {
		return "", err
	}

	switch in.value {
	case quitSentinel:
		return "", nil
	case "":
		return suggestion, nil
	default:
		return in.value, nil
	}
}

func extensionFor(choice editChoice, source string) string {
	if choice == editGIF {
		return ".gif"
	}
	if dot := strings.LastIndex(source, "."); dot != -1 {
		return source[dot:]
	}
	return ".mp4"
}

func (m *mini) handleConfirmState() error {
	title("Summary")

	fmt.Printf("%s  %s\n", icon.Get(icon.Question), m.intent.URL)
	fmt.Printf("%s Mode: %s\n", icon.Get(modeIcon(m.intent.Mode)), util.Capitalize(m.intent.Mode.String()))

	switch m.intent.Mode {
	case media.ModeEdit:
		fmt.Printf("Edit: %s\n", m.editOp)
		fmt.Printf("Output: %s\n", m.editDest)
	case media.ModeStream, media.ModeLive:
		fmt.Printf("Format: %s\n", selectorLabel(m.intent))
	default:
		fmt.Printf("Format: %s\n", selectorLabel(m.intent))
		fmt.Printf("Output: %s\n", extractor.OutputDir(m.intent))
	}

	b, _, err := menu("Proceed?", []fmt.Stringer{}, start, back)
	if err != nil {
		return err
	}

	switch {
	case start.eq(b):
		m.newState(executeState)
	case back.eq(b):
		m.previousState()
	case quit.eq(b):
		m.newState(quitState)
	}

	return nil
}

// modeIcon picks the symbol shown next to a mode in the summary.
func modeIcon(mode media.Mode) icon.Icon {
	switch mode {
	case media.ModeAudio:
		return icon.Audio
	case media.ModeStream, media.ModeLive:
		return icon.Stream
	case media.ModeEdit:
		return icon.Edit
	default:
		return icon.Video
	}
}

func selectorLabel(intent media.Intent) string {
	if len(intent.FormatIDs) > 0 {
		return media.Selector(intent.FormatIDs)
	}
	return "default"
}

func (m *mini) handleExecuteState(ctx context.Context) error {
	output, err := executeIntent(ctx, m.run, m.intent, m.formats(), m.editOp, m.editDest)

	if err != nil {
		var tool *runner.ExternalToolError
		if errors.As(err, &tool) {
			fail(tool.Error())
			return m.afterFailure()
		}
		if errors.Is(err, media.ErrInvalidSelection) {
			fail(err.Error())
			m.setState(formatSelectState)
			return nil
		}
		return err
	}

	fmt.Printf("%s %s\n", icon.Get(icon.Success), style.Fg(style.SuccessColor)("Done"))
	return m.afterSuccess(output)
}

func (m *mini) afterSuccess(output string) error {
	binds := []*bind{again}
	if m.intent.Mode != media.ModeStream && m.intent.Mode != media.ModeLive {
		binds = append(binds, openFolder)
	}

	b, _, err := menu("Next:", []fmt.Stringer{}, binds...)
	if err != nil {
		return err
	}

	switch {
	case openFolder.eq(b):
		if err := open.Start(outputFolder(output)); err != nil {
			fail(err.Error())
		}
		return m.afterSuccess(output)
	case again.eq(b):
		m.restart()
	default:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) afterFailure() error {
	b, _, err := menu("Next:", []fmt.Stringer{}, again, back)
	if err != nil {
		return err
	}

	switch {
	case again.eq(b):
		m.setState(executeState)
	case back.eq(b):
		m.setState(confirmState)
	default:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) restart() {
	m.intent = media.Intent{}
	m.editOp = nil
	m.editDest = ""
	m.statesHistory = util.Stack[state]{}
	m.setState(urlInputState)
}

// outputFolder maps an execute result to the directory worth opening.
func outputFolder(output string) string {
	if isDir, err := filesystem.API().IsDir(output); err == nil && isDir {
		return output
	}
	return filepath.Dir(output)
}
