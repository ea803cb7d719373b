package parse

import "github.com/google/shlex"

// Split splits a command line into argument tokens following POSIX shell
// quoting rules. Splitting is deliberately uniform across platforms: a
// string handed to NewParserFromString tokenizes identically everywhere,
// there is no cmd.exe-style quoting variant.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
