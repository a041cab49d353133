// Package docs holds the xps help topics as embedded markdown files.
//
// readme.md is the index: it lists every topic as "* name: description".
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the topic shown when none is asked for.
const Index = "readme"

// ErrUnknownTopic is returned for a topic without a markdown file.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic is an entry of the index.
type Topic struct {
	Name        string
	Description string
}

var topicLine = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Topics returns the topics listed in the index, in order.
func Topics() ([]Topic, error) {
	content, err := files.ReadFile(Index + ".md")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		if m := topicLine.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Description: m[2]})
		}
	}
	return topics, scanner.Err()
}

// GetTopic returns the markdown of a topic. The name is case insensitive and
// may end with ".md"; "*" returns every topic.
func GetTopic(topic string) (string, error) {
	name := normalize(topic)
	if name == "*" {
		return GetTopics(name)
	}
	content, err := files.ReadFile(name + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w %q, run 'xps topic' for the list", ErrUnknownTopic, topic)
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// GetTopics returns several topics, each once, separated by blank lines.
// "*" stands for all the topics.
func GetTopics(topics ...string) (string, error) {
	var names []string
	for _, topic := range topics {
		if strings.TrimSpace(topic) != "*" {
			names = append(names, topic)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		names = append(names, all...)
	}

	var b strings.Builder
	var seen []string
	for _, name := range names {
		if slices.Contains(seen, normalize(name)) {
			continue
		}
		seen = append(seen, normalize(name))
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the names of all the topics, sorted. The index is
// not a topic.
func GetAllTopics() ([]string, error) {
	matches, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, file := range matches {
		if name := strings.TrimSuffix(file, ".md"); name != Index {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

func normalize(topic string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(topic)), ".md")
}
