package fs

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"unicode"
)

// maxLineLength bounds a single source line.
const maxLineLength = 4 * 1024 * 1024

// ReadLines reads the file at path and returns its lines with trailing whitespace
// removed. Lines end at "\n", "\r\n" or a lone "\r". A final line ending does not
// produce an extra empty line. The file is closed before ReadLines returns.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	sc.Split(scanLines)
	for sc.Scan() {
		lines = append(lines, strings.TrimRightFunc(sc.Text(), unicode.IsSpace))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scanLines is bufio.ScanLines, also ending a line at a carriage return that is
// not followed by a newline.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing "\r" may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
