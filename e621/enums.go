package e621

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownValue is returned by the Parse functions for labels and codes
// outside an enumeration.
var ErrUnknownValue = errors.New("e621: unknown enumeration value")

// codeTable backs the numeric enumerations. Entries keep the order the
// site lists them in.
type codeTable[T ~int] struct {
	name    string
	entries []codeEntry[T]
}

type codeEntry[T ~int] struct {
	code  T
	label string
}

func (t codeTable[T]) label(code T) (string, bool) {
	for _, e := range t.entries {
		if e.code == code {
			return e.label, true
		}
	}
	return "", false
}

// parse accepts a label (case-insensitive) or a numeric code.
func (t codeTable[T]) parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	for _, e := range t.entries {
		if strings.EqualFold(e.label, s) {
			return e.code, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		for _, e := range t.entries {
			if int(e.code) == n {
				return e.code, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownValue, t.name, s)
}

func (t codeTable[T]) codes() []T {
	out := make([]T, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.code
	}
	return out
}

func (t codeTable[T]) format(code T) string {
	if l, ok := t.label(code); ok {
		return l
	}
	return fmt.Sprintf("%s(%d)", t.name, int(code))
}

// TagCategory is the category a tag belongs to.
type TagCategory int

const (
	TagCategoryGeneral   TagCategory = 0
	TagCategoryArtist    TagCategory = 1
	TagCategoryCopyright TagCategory = 3
	TagCategoryCharacter TagCategory = 4
	TagCategorySpecies   TagCategory = 5
	TagCategoryInvalid   TagCategory = 6
	TagCategoryMeta      TagCategory = 7
	TagCategoryLore      TagCategory = 8
)

var tagCategories = codeTable[TagCategory]{
	name: "TagCategory",
	entries: []codeEntry[TagCategory]{
		{TagCategoryGeneral, "general"},
		{TagCategoryArtist, "artist"},
		{TagCategoryCopyright, "copyright"},
		{TagCategoryCharacter, "character"},
		{TagCategorySpecies, "species"},
		{TagCategoryInvalid, "invalid"},
		{TagCategoryMeta, "meta"},
		{TagCategoryLore, "lore"},
	},
}

func (c TagCategory) String() string        { return tagCategories.format(c) }
func (c TagCategory) ParamValue() string    { return strconv.Itoa(int(c)) }
func (c TagCategory) Label() (string, bool) { return tagCategories.label(c) }

// ParseTagCategory maps a label such as "artist", or a numeric code, to a TagCategory.
func ParseTagCategory(s string) (TagCategory, error) { return tagCategories.parse(s) }

// TagCategories lists every tag category.
func TagCategories() []TagCategory { return tagCategories.codes() }

// ReportReason is a post report reason.
type ReportReason int

const (
	ReportRatingAbuse      ReportReason = 1
	ReportMaliciousFile    ReportReason = 2
	ReportMaliciousSources ReportReason = 3
	ReportDescriptionAbuse ReportReason = 4
	ReportNoteAbuse        ReportReason = 5
	ReportTaggingAbuse     ReportReason = 6
)

var reportReasons = codeTable[ReportReason]{
	name: "ReportReason",
	entries: []codeEntry[ReportReason]{
		{ReportRatingAbuse, "Rating Abuse"},
		{ReportMaliciousFile, "Malicious File"},
		{ReportMaliciousSources, "Malicious Sources"},
		{ReportDescriptionAbuse, "Description Abuse"},
		{ReportNoteAbuse, "Note Abuse"},
		{ReportTaggingAbuse, "Tagging Abuse"},
	},
}

func (r ReportReason) String() string        { return reportReasons.format(r) }
func (r ReportReason) ParamValue() string    { return strconv.Itoa(int(r)) }
func (r ReportReason) Label() (string, bool) { return reportReasons.label(r) }

// ParseReportReason maps a label such as "Note Abuse", or a numeric code, to a ReportReason.
func ParseReportReason(s string) (ReportReason, error) { return reportReasons.parse(s) }

// ReportReasons lists every report reason.
func ReportReasons() []ReportReason { return reportReasons.codes() }

// ForumCategory is a forum topic category.
type ForumCategory int

const (
	ForumGeneral         ForumCategory = 1
	ForumSiteBugReports  ForumCategory = 11
	ForumTagWikiProjects ForumCategory = 10
	ForumTagSuggestions  ForumCategory = 2
	ForumArtTalk         ForumCategory = 3
	ForumOffTopic        ForumCategory = 5
	ForumToolsAndApps    ForumCategory = 9
)

var forumCategories = codeTable[ForumCategory]{
	name: "ForumCategory",
	entries: []codeEntry[ForumCategory]{
		{ForumGeneral, "General"},
		{ForumSiteBugReports, "Site Bug Reports & Feature Requests"},
		{ForumTagWikiProjects, "Tag/Wiki Projects and Questions"},
		{ForumTagSuggestions, "Tag Alias and Implication Suggestions"},
		{ForumArtTalk, "Art Talk"},
		{ForumOffTopic, "Off Topic"},
		{ForumToolsAndApps, "e621 Tools and Applications"},
	},
}

func (f ForumCategory) String() string        { return forumCategories.format(f) }
func (f ForumCategory) ParamValue() string    { return strconv.Itoa(int(f)) }
func (f ForumCategory) Label() (string, bool) { return forumCategories.label(f) }

// ParseForumCategory maps a label such as "Art Talk", or a numeric code, to a ForumCategory.
func ParseForumCategory(s string) (ForumCategory, error) { return forumCategories.parse(s) }

// ForumCategories lists every forum category.
func ForumCategories() []ForumCategory { return forumCategories.codes() }

// AccountLevel is a user's access level.
type AccountLevel int

const (
	LevelMember      AccountLevel = 20
	LevelPrivileged  AccountLevel = 30
	LevelContributor AccountLevel = 33
	LevelFormerStaff AccountLevel = 34
	LevelJanitor     AccountLevel = 35
	LevelAdmin       AccountLevel = 50
)

var accountLevels = codeTable[AccountLevel]{
	name: "AccountLevel",
	entries: []codeEntry[AccountLevel]{
		{LevelMember, "Member"},
		{LevelPrivileged, "Privileged"},
		{LevelContributor, "Contributor"},
		{LevelFormerStaff, "Former Staff"},
		{LevelJanitor, "Janitor"},
		{LevelAdmin, "Admin"},
	},
}

func (l AccountLevel) String() string        { return accountLevels.format(l) }
func (l AccountLevel) ParamValue() string    { return strconv.Itoa(int(l)) }
func (l AccountLevel) Label() (string, bool) { return accountLevels.label(l) }

// ParseAccountLevel maps a label such as "Janitor", or a numeric code, to an AccountLevel.
func ParseAccountLevel(s string) (AccountLevel, error) { return accountLevels.parse(s) }

// AccountLevels lists every account level.
func AccountLevels() []AccountLevel { return accountLevels.codes() }

// Rating is a post's content rating, sent as its one-letter code.
type Rating string

const (
	RatingSafe         Rating = "s"
	RatingQuestionable Rating = "q"
	RatingExplicit     Rating = "e"
)

// ParseRating accepts the one-letter code or the full word.
func ParseRating(s string) (Rating, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "explicit":
		return RatingExplicit, nil
	case "q", "questionable":
		return RatingQuestionable, nil
	case "s", "safe":
		return RatingSafe, nil
	}
	return "", fmt.Errorf("%w: rating %q", ErrUnknownValue, s)
}

func (r Rating) String() string {
	switch r {
	case RatingExplicit:
		return "explicit"
	case RatingQuestionable:
		return "questionable"
	case RatingSafe:
		return "safe"
	}
	return string(r)
}

func (r Rating) ParamValue() string { return string(r) }

// Vote is the score sent when voting on a post.
type Vote int

const (
	VoteDown Vote = -1
	VoteUp   Vote = 1
)

// ParseVote maps "up" and "down" to a Vote.
func ParseVote(s string) (Vote, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return VoteUp, nil
	case "down":
		return VoteDown, nil
	}
	return 0, fmt.Errorf("%w: vote %q (must be up or down)", ErrUnknownValue, s)
}

func (v Vote) String() string {
	switch v {
	case VoteUp:
		return "up"
	case VoteDown:
		return "down"
	}
	return strconv.Itoa(int(v))
}

func (v Vote) ParamValue() string { return strconv.Itoa(int(v)) }

// ParsePolarity maps a favorite toggle to true (add) or false (remove).
func ParsePolarity(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "1", "favorite", "true":
		return true, nil
	case "down", "-1", "unfavorite", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: favorite polarity %q", ErrUnknownValue, s)
}

// FlagReason names why a post is flagged for deletion.
type FlagReason string

const (
	FlagDNPArtist         FlagReason = "dnp_artist"
	FlagPayContent        FlagReason = "pay_content"
	FlagTrace             FlagReason = "trace"
	FlagPreviouslyDeleted FlagReason = "previously_deleted"
	FlagRealPorn          FlagReason = "real_porn"
	FlagCorrupt           FlagReason = "corrupt"
	FlagInferior          FlagReason = "inferior"
	FlagUser              FlagReason = "user"
)

// FlagReasons lists every accepted flag reason.
func FlagReasons() []FlagReason {
	return []FlagReason{
		FlagDNPArtist, FlagPayContent, FlagTrace, FlagPreviouslyDeleted,
		FlagRealPorn, FlagCorrupt, FlagInferior, FlagUser,
	}
}

// PoolCategory is the kind of pool.
type PoolCategory string

const (
	PoolSeries     PoolCategory = "series"
	PoolCollection PoolCategory = "collection"
)

// PoolCategories lists every pool category.
func PoolCategories() []PoolCategory {
	return []PoolCategory{PoolSeries, PoolCollection}
}

// FeedbackCategory classifies user feedback.
type FeedbackCategory string

const (
	FeedbackPositive FeedbackCategory = "positive"
	FeedbackNegative FeedbackCategory = "negative"
	FeedbackNeutral  FeedbackCategory = "neutral"
)

// FeedbackCategories lists every feedback category.
func FeedbackCategories() []FeedbackCategory {
	return []FeedbackCategory{FeedbackPositive, FeedbackNegative, FeedbackNeutral}
}

// AliasStatus filters tag aliases by state.
type AliasStatus string

const (
	AliasApproved   AliasStatus = "approved"
	AliasActive     AliasStatus = "active"
	AliasPending    AliasStatus = "pending"
	AliasDeleted    AliasStatus = "deleted"
	AliasRetired    AliasStatus = "retired"
	AliasProcessing AliasStatus = "processing"
	AliasQueued     AliasStatus = "queued"
)

// AliasStatuses lists every alias status.
func AliasStatuses() []AliasStatus {
	return []AliasStatus{
		AliasApproved, AliasActive, AliasPending, AliasDeleted,
		AliasRetired, AliasProcessing, AliasQueued,
	}
}

// AliasOrder sorts tag alias listings.
type AliasOrder string

const (
	AliasOrderStatus    AliasOrder = "status"
	AliasOrderCreatedAt AliasOrder = "created_at"
	AliasOrderUpdatedAt AliasOrder = "updated_at"
	AliasOrderName      AliasOrder = "name"
	AliasOrderTagCount  AliasOrder = "tag_count"
)

// AliasOrders lists every alias sort order.
func AliasOrders() []AliasOrder {
	return []AliasOrder{
		AliasOrderStatus, AliasOrderCreatedAt, AliasOrderUpdatedAt,
		AliasOrderName, AliasOrderTagCount,
	}
}

// TagOrder sorts tag listings.
type TagOrder string

const (
	TagOrderDate  TagOrder = "date"
	TagOrderCount TagOrder = "count"
	TagOrderName  TagOrder = "name"
)

// TagOrders lists every tag sort order.
func TagOrders() []TagOrder {
	return []TagOrder{TagOrderDate, TagOrderCount, TagOrderName}
}

// oneOf reports whether v is in allowed, for use in validation messages.
func oneOf[T ~string](v T, allowed []T) bool {
	return slices.Contains(allowed, v)
}

func joinValues[T ~string](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
