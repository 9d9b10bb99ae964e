package securetypes

import "golang.org/x/term"

// ReadPassword reads a line from the terminal fd with echo disabled and moves
// it straight into a locked SecureString. The intermediate line buffer is
// adopted, not copied; on invalid UTF-8 it is wiped before the error returns.
func ReadPassword(fd int) (*SecureString, error) {
	line, err := term.ReadPassword(fd)
	if err != nil {
		wipe(line)
		return nil, err
	}
	s, err := StringFromBytes(line)
	if err != nil {
		wipe(line)
		return nil, err
	}
	return s, nil
}
