// Package corpus hands the trainer one text sample at a time. No
// streaming-corpus library appears anywhere in the retrieved pack, so
// Reader wraps the standard library's own streaming-text idiom,
// bufio.Scanner, rather than reaching for a third-party dependency that
// was never shown for this concern.
package corpus
