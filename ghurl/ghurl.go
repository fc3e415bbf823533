// Package ghurl parses and normalizes GitHub repository references.
//
// 接受 owner/name 简写、https/ssh/git 协议 URL 与 scp 风格的
// git@github.com:owner/name 写法，统一解析为 Repo。
package ghurl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNotGitHub is returned for URLs pointing at a foreign host.
	ErrNotGitHub = errors.New("ghurl: not a github.com URL")

	// ErrInvalidRepo is returned for references that do not resolve to an
	// owner/name pair.
	ErrInvalidRepo = errors.New("ghurl: invalid repository reference")
)

// Repo identifies a GitHub repository. Owner 与 Name 保留输入的大小写。
type Repo struct {
	Owner string
	Name  string
}

var (
	// scp 风格：git@github.com:owner/name[.git]
	scpRe = regexp.MustCompile(`^git@(?:www\.)?github\.com:([^/]+)/(.+)$`)
	// URL 风格：[scheme://][git@][www.]github.com/owner/name[.git][/]
	urlRe = regexp.MustCompile(`^(?:(?:https?|ssh|git)://)?(?:git@)?(?:www\.)?github\.com/([^/]+)/([^/]+)/?$`)
	// 裸 owner/name 简写
	shortRe = regexp.MustCompile(`^([^/@:]+)/([^/@:]+)$`)
	// GitHub 用户名/仓库名的合法字符
	ownerRe = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)
	nameRe  = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// Parse resolves a GitHub repository reference in any accepted form.
func Parse(raw string) (Repo, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Repo{}, fmt.Errorf("%w: empty input", ErrInvalidRepo)
	}

	// 带主机名但不是 github.com 的输入单独报错。
	if hasForeignHost(s) {
		return Repo{}, fmt.Errorf("%w: %q", ErrNotGitHub, raw)
	}

	for _, re := range []*regexp.Regexp{scpRe, urlRe, shortRe} {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		owner := m[1]
		name := strings.TrimSuffix(strings.TrimSuffix(m[2], "/"), ".git")
		if !ownerRe.MatchString(owner) || !nameRe.MatchString(name) {
			return Repo{}, fmt.Errorf("%w: %q", ErrInvalidRepo, raw)
		}
		return Repo{Owner: owner, Name: name}, nil
	}
	return Repo{}, fmt.Errorf("%w: %q", ErrInvalidRepo, raw)
}

// Normalize returns the canonical https URL for a reference in any
// accepted form.
func Normalize(raw string) (string, error) {
	repo, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return repo.HTTPSURL(), nil
}

// hasForeignHost 判断输入是否明确指向 github.com 以外的主机。
func hasForeignHost(s string) bool {
	host := ""
	switch {
	case strings.Contains(s, "://"):
		rest := s[strings.Index(s, "://")+3:]
		host = strings.SplitN(rest, "/", 2)[0]
	case strings.HasPrefix(s, "git@"):
		host = strings.SplitN(strings.TrimPrefix(s, "git@"), ":", 2)[0]
	default:
		return false
	}
	host = strings.TrimPrefix(host, "git@")
	host = strings.TrimPrefix(host, "www.")
	return host != "github.com"
}

// String returns the owner/name shorthand.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// HTTPSURL returns https://github.com/owner/name.
func (r Repo) HTTPSURL() string {
	return "https://github.com/" + r.Owner + "/" + r.Name
}

// SSHURL returns git@github.com:owner/name.git.
func (r Repo) SSHURL() string {
	return "git@github.com:" + r.Owner + "/" + r.Name + ".git"
}

// GitURL returns git://github.com/owner/name.git.
func (r Repo) GitURL() string {
	return "git://github.com/" + r.Owner + "/" + r.Name + ".git"
}
