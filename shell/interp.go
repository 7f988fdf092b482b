// Package shell implements vibesh, the fake login shell. The interpreter is
// pure line-in/lines-out; the terminal scene owns the screen buffer, cursor,
// and key handling.
package shell

import (
	"fmt"
	"strings"

	"github.com/vibecoded/badtime/settings"
)

// Directive is a side effect the host must perform after a command. The
// interpreter never switches scenes itself.
type Directive int

const (
	DirectiveNone Directive = iota
	DirectiveStartX
	DirectiveOpenConfig
	DirectiveLogout
	DirectiveReboot
	DirectiveShutdown
	DirectiveClear
	DirectivePanic
)

// Result is the outcome of executing one input line.
type Result struct {
	Output    []string
	Directive Directive
}

// WrapWidth is the terminal's text column limit.
const WrapWidth = 75

// Config seeds a new interpreter. Zero-value fields get sane defaults.
type Config struct {
	User   string
	Host   string
	Kernel string
	Lang   settings.Language
}

type Interpreter struct {
	user   string
	host   string
	kernel string
	lang   settings.Language
}

func New(cfg Config) *Interpreter {
	if cfg.User == "" {
		cfg.User = "root"
	}
	if cfg.Host == "" {
		cfg.Host = "vibebox"
	}
	if cfg.Kernel == "" {
		cfg.Kernel = "6.9.420-vibecoded"
	}
	return &Interpreter{
		user:   cfg.User,
		host:   cfg.Host,
		kernel: cfg.Kernel,
		lang:   cfg.Lang,
	}
}

func (it *Interpreter) SetLanguage(lang settings.Language) {
	it.lang = lang
}

// Prompt is the line prefix the terminal draws before user input.
func (it *Interpreter) Prompt() string {
	return fmt.Sprintf("%s@%s:~$ ", it.user, it.host)
}

// Banner is printed once when the shell opens.
func (it *Interpreter) Banner() []string {
	return []string{tableFor(it.lang).LoginBanner}
}

// Exec runs one input line and returns its output plus any host directive.
func (it *Interpreter) Exec(line string) Result {
	msgs := tableFor(it.lang)

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Result{}
	}

	fields := strings.Fields(trimmed)
	switch fields[0] {
	case "help":
		out := append([]string{msgs.HelpIntro}, msgs.HelpLines...)
		return Result{Output: out}
	case "neofetch":
		return Result{Output: it.neofetch()}
	case "startx":
		return Result{Output: []string{msgs.StartX}, Directive: DirectiveStartX}
	case "config":
		return Result{Output: []string{msgs.OpenConfig}, Directive: DirectiveOpenConfig}
	case "logout", "exit":
		return Result{Output: []string{msgs.Logout}, Directive: DirectiveLogout}
	case "reboot":
		return Result{Output: []string{msgs.Reboot}, Directive: DirectiveReboot}
	case "shutdown", "poweroff", "halt":
		return Result{Output: []string{msgs.Shutdown}, Directive: DirectiveShutdown}
	case "clear":
		return Result{Directive: DirectiveClear}
	case "panic":
		// Undocumented, like the real sysrq trigger.
		return Result{Directive: DirectivePanic}
	case "whoami":
		return Result{Output: []string{it.user}}
	case "uname":
		if len(fields) > 1 && fields[1] == "-a" {
			return Result{Output: []string{fmt.Sprintf(
				"Linux %s %s #1 SMP PREEMPT_DYNAMIC x86_64 GNU/Linux", it.host, it.kernel)}}
		}
		return Result{Output: []string{"Linux"}}
	case "echo":
		return Result{Output: WrapText(strings.TrimSpace(trimmed[len("echo"):]), WrapWidth)}
	}

	// Not a builtin: see if it evaluates as an expression before giving up.
	if val, ok := eval(trimmed); ok {
		return Result{Output: WrapText(msgs.EvalPrefix+val, WrapWidth)}
	}
	return Result{Output: []string{fmt.Sprintf(msgs.NotFound, fields[0])}}
}

func (it *Interpreter) neofetch() []string {
	title := fmt.Sprintf("%s@%s", it.user, it.host)
	info := []string{
		title,
		strings.Repeat("-", len(title)),
		"OS: VibeCoded Linux 1.0 LTS x86_64",
		"Kernel: " + it.kernel,
		"Uptime: immeasurable",
		"Shell: vibesh 0.6.9",
		"Resolution: 800x600",
		"Terminal: vibeterm",
		"Memory: 69MiB / 420MiB",
	}

	art := []string{
		`    .---.    `,
		`   /     \   `,
		`   \.@-@./   `,
		`   /` + "`" + `\_/` + "`" + `\   `,
		`  //  _  \\  `,
		` | \     )|_ `,
		`/` + "`" + `\_` + "`" + `>  <_/ \` + "`" + ``,
		`\__/'---'\__/`,
	}

	n := len(info)
	if len(art) > n {
		n = len(art)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var left, right string
		if i < len(art) {
			left = art[i]
		} else {
			left = strings.Repeat(" ", len(art[0]))
		}
		if i < len(info) {
			right = info[i]
		}
		out = append(out, left+"  "+right)
	}
	return out
}
