package shell

import (
	"strings"

	"github.com/vibecoded/badtime/settings"
)

// messages is one language's text table. Command names themselves are never
// translated, only the responses.
type messages struct {
	HelpIntro   string
	HelpLines   []string
	StartX      string
	OpenConfig  string
	Logout      string
	Reboot      string
	Shutdown    string
	NotFound    string // fmt verb: command name
	EvalPrefix  string
	LoginBanner string
}

var messageTables = map[settings.Language]messages{
	settings.LangEnglish: {
		HelpIntro: "vibesh builtins:",
		HelpLines: []string{
			"  help        show this help",
			"  neofetch    show system info",
			"  startx      start the graphical session",
			"  config      open the settings dialog",
			"  clear       clear the screen",
			"  whoami      print the current user",
			"  uname -a    print kernel info",
			"  logout      log out (exit works too)",
			"  reboot      reboot the machine",
			"  shutdown    power off",
			"anything else is evaluated as an expression, try 2+2.",
		},
		StartX:      "Starting X server...",
		OpenConfig:  "Opening configuration...",
		Logout:      "logout",
		Reboot:      "The system is going down for reboot NOW!",
		Shutdown:    "The system will power off now.",
		NotFound:    "vibesh: %s: command not found",
		EvalPrefix:  "= ",
		LoginBanner: "Last login: never. First time? Type 'help'.",
	},
	settings.LangTurkish: {
		HelpIntro: "vibesh komutlari:",
		HelpLines: []string{
			"  help        bu yardimi goster",
			"  neofetch    sistem bilgisini goster",
			"  startx      grafik oturumu baslat",
			"  config      ayarlar penceresini ac",
			"  clear       ekrani temizle",
			"  whoami      mevcut kullaniciyi yazdir",
			"  uname -a    cekirdek bilgisini yazdir",
			"  logout      oturumu kapat (exit de olur)",
			"  reboot      makineyi yeniden baslat",
			"  shutdown    makineyi kapat",
			"baska her sey ifade olarak hesaplanir, 2+2 dene.",
		},
		StartX:      "X sunucusu baslatiliyor...",
		OpenConfig:  "Ayarlar aciliyor...",
		Logout:      "oturum kapatildi",
		Reboot:      "Sistem SIMDI yeniden baslatiliyor!",
		Shutdown:    "Sistem simdi kapatilacak.",
		NotFound:    "vibesh: %s: komut bulunamadi",
		EvalPrefix:  "= ",
		LoginBanner: "Son giris: hic. Ilk kez mi? 'help' yaz.",
	},
}

func tableFor(lang settings.Language) messages {
	if t, ok := messageTables[lang]; ok {
		return t
	}
	return messageTables[settings.LangEnglish]
}

// WrapText word-wraps s to the given column width, preserving existing
// newlines. Words longer than the width get a line of their own.
func WrapText(s string, width int) []string {
	if width < 1 {
		return []string{s}
	}

	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}
