package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
)

func displayICE(message string) {
	errorStyleBG.Print("Internal Binder Error")
	errorColorFG.Println(" " + message)
}

func displayFatal(message string) {
	errorStyleBG.Print("Fatal Error")
	errorColorFG.Println(" " + message)
}

func (cm *CompileMessage) display() {
	label, style, color := "error", errorStyleBG, errorColorFG
	if !cm.isError() {
		label, style, color = "warning", warnStyleBG, warnColorFG
	}

	style.Print(fmt.Sprintf(" %s [%s] ", label, cm.Kind))
	if cm.Context != nil && cm.Position != nil {
		color.Printf(" %s:%d:%d: %s\n", cm.Context.ReprPath, cm.Position.StartLn+1, cm.Position.StartCol+1, cm.Message)
		displaySourceText(cm.Context.FilePath, cm.Position)
	} else if cm.Context != nil {
		color.Printf(" %s: %s\n", cm.Context.ReprPath, cm.Message)
	} else {
		color.Printf(" %s\n", cm.Message)
	}
}

// displaySourceText prints the source lines covered by pos with a caret
// underline, matching the teacher's error-context rendering.
func displaySourceText(absPath string, pos *TextPosition) {
	file, err := os.Open(absPath)
	if err != nil {
		return
	}
	defer file.Close()

	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if pos.StartLn <= ln && ln <= pos.EndLn {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}
	if len(lines) == 0 {
		return
	}

	maxLineNumLen := len(strconv.Itoa(pos.EndLn + 1))
	lineNumFmt := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmt, i+pos.StartLn+1)
		fmt.Println(line)

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		var prefix, suffix int
		if i == 0 {
			prefix = pos.StartCol
		}
		if i == len(lines)-1 {
			suffix = len(line) - pos.EndCol
		}
		if suffix < 0 {
			suffix = 0
		}
		caretLen := len(line) - prefix - suffix
		if caretLen < 1 {
			caretLen = 1
		}
		fmt.Print(strings.Repeat(" ", prefix))
		fmt.Println(strings.Repeat("^", caretLen))
	}
	fmt.Println()
}
