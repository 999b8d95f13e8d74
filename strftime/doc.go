// Package strftime renders broken-down times to text with a fixed
// format-code table and C-locale name tables.
//
// Unknown format codes are not an error: they pass through literally as
// written, e.g. "%Q" renders as "%Q". This leniency is intentional and
// relied on by callers that post-process format strings.
package strftime
