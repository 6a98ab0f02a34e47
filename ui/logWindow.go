package ui

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"

	"glowbar/config"
)

const (
	initialLinesToShow = 500 // Show last 500 lines initially
	maxFollowedLines   = 2000
)

func ShowLogWindow(glowApp fyne.App) {
	logFilePath, err := config.LogPath()
	if err != nil {
		log.Printf("cannot locate log file: %v", err)
		return
	}

	logWindow := glowApp.NewWindow("glowbar Log")
	logWindow.Resize(fyne.NewSize(800, 600))

	// Use a Label for better performance
	logLabel := widget.NewLabel("Loading log file...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	var displayedLines []string
	var follower *tail.Tail

	updateDisplay := func() {
		logLabel.SetText(strings.Join(displayedLines, "\n"))
	}

	appendLine := func(line string) {
		displayedLines = append(displayedLines, line)
		if len(displayedLines) > maxFollowedLines {
			displayedLines = displayedLines[len(displayedLines)-maxFollowedLines:]
		}
		updateDisplay()
	}

	performSearch := func() {
		query := searchEntry.Text
		if query == "" {
			updateDisplay()
			return
		}

		go func() {
			var filtered []string
			queryLower := strings.ToLower(query)

			for _, line := range displayedLines {
				if strings.Contains(strings.ToLower(line), queryLower) {
					filtered = append(filtered, line)
				}
			}

			result := ""
			if len(filtered) == 0 {
				result = fmt.Sprintf("No results found for: %s", query)
			} else {
				result = strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches in loaded lines]", len(filtered))
			}

			fyne.Do(func() {
				logLabel.SetText(result)
			})
		}()
	}

	searchEntry.OnSubmitted = func(string) {
		performSearch()
	}

	searchButton := widget.NewButton("Search", performSearch)

	clearButton := widget.NewButton("Clear", func() {
		searchEntry.SetText("")
		updateDisplay()
	})

	stopFollowing := func() {
		if follower != nil {
			follower.Stop()
			follower.Cleanup()
			follower = nil
		}
	}

	// Follow tails the log file so new entries stream in live.
	followCheck := widget.NewCheck("Follow", func(on bool) {
		if !on {
			stopFollowing()
			return
		}

		t, err := tail.TailFile(logFilePath, tail.Config{
			Follow:   true,
			ReOpen:   true,
			Poll:     true,
			Location: &tail.SeekInfo{Whence: io.SeekEnd},
			Logger:   tail.DiscardingLogger,
		})
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to follow log file: %v", err), logWindow)
			return
		}
		follower = t

		go func() {
			for line := range t.Lines {
				if line.Err != nil {
					continue
				}
				text := line.Text
				fyne.Do(func() {
					appendLine(text)
				})
			}
		}()
	})

	openDirButton := widget.NewButton("Open Log Directory", func() {
		openDirectory(filepath.Dir(logFilePath), logWindow)
	})

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, followCheck, openDirButton),
		searchEntry)

	scroll := container.NewScroll(logLabel)

	content := container.NewBorder(searchBox, nil, nil, nil, scroll)
	logWindow.SetContent(content)
	logWindow.SetOnClosed(stopFollowing)
	logWindow.Show()

	// Load the tail of the file asynchronously
	go func() {
		lines, err := readLogLines(logFilePath)
		if err != nil {
			fyne.Do(func() {
				logLabel.SetText(fmt.Sprintf("Failed to open log file: %v", err))
			})
			return
		}

		if len(lines) > initialLinesToShow {
			lines = lines[len(lines)-initialLinesToShow:]
		}

		fyne.Do(func() {
			displayedLines = lines
			updateDisplay()
		})
	}()
}

func readLogLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// openDirectory opens the file manager to the specified directory
func openDirectory(path string, parent fyne.Window) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		dialog.ShowError(fmt.Errorf("unsupported operating system"), parent)
		return
	}

	err := cmd.Start()
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to open directory: %v", err), parent)
	}
}
