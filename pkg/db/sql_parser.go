package db

import (
	"strings"
	"unicode"
)

type sqlScanMode int

const (
	sqlModePlain sqlScanMode = iota
	sqlModeSingleQuote
	sqlModeDoubleQuote
	sqlModeLineComment
	sqlModeBlockComment
	sqlModeDollarBody
)

// splitSQLStatements breaks a migration file into executable statements.
// Semicolons inside quotes, comments, and $tag$-quoted bodies do not
// terminate a statement; comment text is dropped from the output.
func splitSQLStatements(content string) []string {
	var (
		statements []string
		current    strings.Builder
	)

	mode := sqlModePlain
	dollarTag := ""

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}

		current.Reset()
	}

	for i := 0; i < len(content); i++ {
		ch := content[i]

		switch mode {
		case sqlModeLineComment:
			if ch == '\n' {
				mode = sqlModePlain
				current.WriteByte(ch)
			}

		case sqlModeBlockComment:
			if ch == '*' && i+1 < len(content) && content[i+1] == '/' {
				mode = sqlModePlain
				i++
			}

		case sqlModeDollarBody:
			if strings.HasPrefix(content[i:], dollarTag) {
				current.WriteString(dollarTag)
				i += len(dollarTag) - 1
				dollarTag = ""
				mode = sqlModePlain

				continue
			}

			current.WriteByte(ch)

		case sqlModeSingleQuote:
			if ch == '\'' {
				mode = sqlModePlain
			}

			current.WriteByte(ch)

		case sqlModeDoubleQuote:
			if ch == '"' {
				mode = sqlModePlain
			}

			current.WriteByte(ch)

		default:
			switch {
			case ch == '-' && i+1 < len(content) && content[i+1] == '-':
				mode = sqlModeLineComment
				i++

			case ch == '/' && i+1 < len(content) && content[i+1] == '*':
				mode = sqlModeBlockComment
				i++

			case ch == '$':
				tag, advance := scanDollarTag(content[i:])
				if tag == "" {
					current.WriteByte(ch)

					continue
				}

				dollarTag = tag
				mode = sqlModeDollarBody
				current.WriteString(tag)
				i += advance - 1

			case ch == '\'':
				mode = sqlModeSingleQuote
				current.WriteByte(ch)

			case ch == '"':
				mode = sqlModeDoubleQuote
				current.WriteByte(ch)

			case ch == ';':
				flush()

			default:
				current.WriteByte(ch)
			}
		}
	}

	flush()

	return statements
}

// scanDollarTag reads a $tag$ opener at the start of content, returning the
// full tag (both dollar signs included) and its byte length, or "" when the
// content does not open a dollar-quoted body. Bind placeholders like $1 are
// not tags.
func scanDollarTag(content string) (string, int) {
	if content == "" || content[0] != '$' {
		return "", 0
	}

	for i := 1; i < len(content); i++ {
		ch := content[i]

		if ch == '$' {
			return content[:i+1], i + 1
		}

		if ch != '_' && !unicode.IsLetter(rune(ch)) && !unicode.IsDigit(rune(ch)) {
			return "", 0
		}
	}

	return "", 0
}

func migrationVersion(filename string) string {
	if idx := strings.IndexByte(filename, '_'); idx > 0 {
		return filename[:idx]
	}

	return filename
}
