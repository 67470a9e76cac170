package extract

import "strings"

// Resolution works on the raw reference text. Non-ASCII runes and stray '%'
// signs pass through unchanged.

const schemeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+-."

var relativeSchemes = map[string]bool{"": true, "http": true, "https": true, "ftp": true, "file": true}

type urlParts struct {
	scheme    string
	authority string
	path      string
	query     string
	fragment  string
}

// splitURL breaks raw into its five components without decoding anything. Tabs and
// newlines are dropped and leading controls or spaces trimmed first.
func splitURL(raw, defaultScheme string) urlParts {
	raw = strings.TrimLeftFunc(raw, func(r rune) bool { return r <= ' ' })
	raw = strings.NewReplacer("\t", "", "\r", "", "\n", "").Replace(raw)

	p := urlParts{scheme: defaultScheme}
	if i := strings.IndexByte(raw, ':'); i > 0 && isASCIILetter(raw[0]) &&
		strings.Trim(raw[:i], schemeChars) == "" {
		p.scheme = strings.ToLower(raw[:i])
		raw = raw[i+1:]
	}
	if strings.HasPrefix(raw, "//") {
		raw = raw[2:]
		end := strings.IndexAny(raw, "/?#")
		if end < 0 {
			end = len(raw)
		}
		p.authority, raw = raw[:end], raw[end:]
	}
	raw, p.fragment, _ = strings.Cut(raw, "#")
	p.path, p.query, _ = strings.Cut(raw, "?")
	return p
}

func (p urlParts) String() string {
	out := p.path
	if p.authority != "" || (p.scheme != "" && relativeSchemes[p.scheme] && !strings.HasPrefix(out, "//")) {
		if out != "" && out[0] != '/' {
			out = "/" + out
		}
		out = "//" + p.authority + out
	}
	if p.scheme != "" {
		out = p.scheme + ":" + out
	}
	if p.query != "" {
		out += "?" + p.query
	}
	if p.fragment != "" {
		out += "#" + p.fragment
	}
	return out
}

// joinURL resolves ref against base. Dot segments are collapsed; nothing is
// escaped or unescaped.
func joinURL(base, ref string) string {
	if base == "" {
		return ref
	}
	if ref == "" {
		return base
	}
	b := splitURL(base, "")
	r := splitURL(ref, b.scheme)
	if r.scheme != b.scheme || !relativeSchemes[r.scheme] {
		return ref
	}
	if r.authority != "" {
		return r.String()
	}
	r.authority = b.authority

	if r.path == "" {
		r.path = b.path
		if r.query == "" {
			r.query = b.query
		}
		return r.String()
	}

	var segments []string
	if strings.HasPrefix(r.path, "/") {
		segments = strings.Split(r.path, "/")
	} else {
		baseSegments := strings.Split(b.path, "/")
		if baseSegments[len(baseSegments)-1] != "" {
			baseSegments = baseSegments[:len(baseSegments)-1]
		}
		segments = append(baseSegments, strings.Split(r.path, "/")...)
		segments = dropInnerEmpty(segments)
	}

	resolved := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		case ".":
		default:
			resolved = append(resolved, seg)
		}
	}
	if last := segments[len(segments)-1]; last == "." || last == ".." {
		resolved = append(resolved, "")
	}

	r.path = strings.Join(resolved, "/")
	if r.path == "" {
		r.path = "/"
	}
	return r.String()
}

// dropInnerEmpty removes empty segments except the first and last.
func dropInnerEmpty(segments []string) []string {
	if len(segments) < 3 {
		return segments
	}
	out := []string{segments[0]}
	for _, seg := range segments[1 : len(segments)-1] {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return append(out, segments[len(segments)-1])
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
