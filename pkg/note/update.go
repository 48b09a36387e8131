package note

import (
	"fmt"
	"os"
	"strings"
)

// The anchor lines are a versioned contract with the note template: blocks
// are inserted immediately after them, and notes written under older anchor
// text will not be matched.
const (
	MorningAnchor  = "### Log morning"
	ExerciseAnchor = "### 👟 Exercise"
)

// Update inserts the sleep block after the morning anchor and the exercise
// block after the exercise anchor, appending a missing anchor to the end of
// the note first. Insertion is append-only: existing content is never
// removed, and repeated runs accumulate blocks. The parent directory must
// already exist.
func Update(path string, sleepLines, exerciseLines []string) error {
	content, err := readLines(path)
	if err != nil {
		return err
	}

	content = insertBlock(content, MorningAnchor, sleepLines)
	// The exercise anchor is located on the already-mutated sequence;
	// positions from before the sleep insertion would be stale.
	content = insertBlock(content, ExerciseAnchor, exerciseLines)

	if err := os.WriteFile(path, []byte(strings.Join(content, "")), 0644); err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	return nil
}

// readLines reads the note as a sequence of lines with terminators
// preserved. A missing file reads as an empty sequence.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read note: %w", err)
	}

	lines := strings.SplitAfter(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// insertBlock places the joined block immediately after the first line
// matching anchor, tolerating trailing whitespace on the matched line. When
// the anchor is absent it is appended first. An empty block leaves the note
// untouched. The block adopts the note's line terminator, and an
// unterminated matched line is terminated before insertion so the block
// never glues onto the header.
func insertBlock(content []string, anchor string, block []string) []string {
	if len(block) == 0 {
		return content
	}

	at := -1
	eol := "\n"
	for i, line := range content {
		if strings.TrimRight(line, " \t\r\n") == anchor {
			if strings.HasSuffix(line, "\r\n") {
				eol = "\r\n"
			}
			if !strings.HasSuffix(line, "\n") {
				content[i] = line + eol
			}
			at = i + 1
			break
		}
	}
	if at < 0 {
		if last := len(content) - 1; last >= 0 {
			if strings.HasSuffix(content[last], "\r\n") {
				eol = "\r\n"
			}
			if !strings.HasSuffix(content[last], "\n") {
				content[last] += eol
			}
		}
		content = append(content, eol+anchor+eol)
		at = len(content)
	}

	joined := strings.Join(block, eol) + eol
	content = append(content, "")
	copy(content[at+1:], content[at:])
	content[at] = joined
	return content
}
