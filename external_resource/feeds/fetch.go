package feeds

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// feedUserAgent is sent to the download endpoints, some of which reject
// non-browser agents
const feedUserAgent = "Mozilla/5.0 (compatible; Domain-MCP/1.0)"

// download opens a feed body; the caller closes it
func download(ctx context.Context, client *http.Client, source, url, userAgent string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", source, err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s feed: %w", source, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%s feed returned status %d", source, resp.StatusCode)
	}
	return resp.Body, nil
}

// maxLineSize bounds a single feed line
const maxLineSize = 1 << 20

// splitLine splits one feed line into fields. Balanced quoting is read as
// CSV so quoted commas survive; anything else is split on every comma.
func splitLine(line string) []string {
	if strings.Count(line, `"`)%2 == 0 {
		reader := csv.NewReader(strings.NewReader(line))
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true
		if fields, err := reader.Read(); err == nil {
			return fields
		}
	}
	return strings.Split(line, ",")
}

// eachRecord walks the feed line by line until fn returns false. Blank
// lines and '#' comments are skipped; a read error aborts the walk.
func eachRecord(r io.Reader, skipHeader bool, fn func(fields []string) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	header := skipHeader
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if header {
			header = false
			continue
		}

		fields := splitLine(line)
		for i := range fields {
			fields[i] = strings.Trim(strings.TrimSpace(fields[i]), `"`)
		}
		if !fn(fields) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read feed: %w", err)
	}
	return nil
}
