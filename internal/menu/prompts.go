package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine prints a prompt and reads one trimmed line of input
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readFloat prints a prompt and parses the answer as a float
func (m *Menu) readFloat(prompt string) (float64, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", line)
	}
	return value, nil
}

// readInt prints a prompt and parses the answer as an integer
func (m *Menu) readInt(prompt string) (int, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", line)
	}
	return value, nil
}
