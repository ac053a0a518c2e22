package utils

import (
	"io"
)

// WriteAll keeps writing until data is drained. Writers that report short
// writes without an error are retried, a writer that stops making progress
// fails with io.ErrShortWrite.
func WriteAll(data []byte, writer io.Writer) error {
	wrote := 0
	for wrote < len(data) {
		n, err := writer.Write(data[wrote:])
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}

		wrote += n
	}

	return nil
}
