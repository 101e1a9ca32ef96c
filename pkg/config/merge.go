package config

import (
	"sort"

	"github.com/arthur-debert/spacefeeder/pkg/categorization"
	"github.com/arthur-debert/spacefeeder/pkg/errors"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

// mergeTags appends curated tag definitions that the user has not
// overridden by name.
func mergeTags(cfg *categorization.Config) {
	userNames := make(map[string]bool, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		userNames[tag.Name] = true
	}
	for _, tag := range DefaultTags() {
		if !userNames[tag.Name] {
			cfg.Tags = append(cfg.Tags, tag)
		}
	}
}

// mergeCategorization appends the curated rules and aliases after the
// user's own, so user rules keep declaration priority.
func mergeCategorization(cfg *categorization.Config) {
	rules, aliases := DefaultRules()
	cfg.Rules = append(cfg.Rules, rules...)
	cfg.Aliases = append(cfg.Aliases, aliases...)
}

// mergeFeeds resolves the user's minimal feed entries against the curated
// registry. Registry feeds the user never mentions stay inactive; custom
// feeds must carry a url and an author of their own.
func mergeFeeds(userFeeds map[string]feeds.UserFeedInfo) (map[string]feeds.FeedInfo, error) {
	registry := DefaultFeeds()
	merged := make(map[string]feeds.FeedInfo, len(userFeeds))

	for slug, userFeed := range userFeeds {
		if userFeed.Tier != "" && !userFeed.Tier.Valid() {
			return nil, errors.Newf(errors.ErrConfigValid,
				"feed %q has invalid tier %q", slug, userFeed.Tier)
		}
		if registryFeed, ok := registry[slug]; ok {
			merged[slug] = mergeSingleFeed(registryFeed, userFeed)
			continue
		}
		custom, err := customFeed(slug, userFeed)
		if err != nil {
			return nil, err
		}
		merged[slug] = custom
	}

	return merged, nil
}

// mergeSingleFeed overlays the user's fields on a registry entry. The tier
// is the user's choice when given; tags union with the registry's.
func mergeSingleFeed(base feeds.FeedInfo, user feeds.UserFeedInfo) feeds.FeedInfo {
	if user.Tier != "" {
		base.Tier = user.Tier
	}

	if user.URL != nil {
		base.URL = *user.URL
	}
	if user.Author != nil {
		base.Author = *user.Author
	}
	if user.Description != nil {
		base.Description = *user.Description
	}
	if user.Tags != nil {
		all := append([]string{}, base.Tags...)
		all = append(all, user.Tags...)
		sort.Strings(all)
		base.Tags = dedupe(all)
	}
	if user.AutoTag != nil {
		base.AutoTag = user.AutoTag
	}

	return base
}

func customFeed(slug string, user feeds.UserFeedInfo) (feeds.FeedInfo, error) {
	if user.URL == nil || *user.URL == "" {
		return feeds.FeedInfo{}, errors.Newf(errors.ErrConfigValid,
			"feed %q must specify url", slug)
	}
	if user.Author == nil || *user.Author == "" {
		return feeds.FeedInfo{}, errors.Newf(errors.ErrConfigValid,
			"feed %q must specify author", slug)
	}

	info := feeds.FeedInfo{
		URL:     *user.URL,
		Author:  *user.Author,
		Tier:    tierOrDefault(user.Tier),
		Tags:    user.Tags,
		AutoTag: user.AutoTag,
	}
	if user.Description != nil {
		info.Description = *user.Description
	}
	return info, nil
}

func tierOrDefault(t feeds.Tier) feeds.Tier {
	if t == "" {
		return feeds.TierNew
	}
	return t
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
