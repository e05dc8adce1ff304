package api

import (
	"fmt"
	"time"
)

// Dataset is the in-memory collection set the mock service operates on.
// It stands in for a server-side database: one instance per session,
// constructed by NewDataset and handed to the Service. Tests get
// isolation by building a fresh instance each.
//
// Dataset itself does no locking; the Service serializes access.
type Dataset struct {
	Users         []User
	Posts         []Post // most-recent-first
	Comments      []Comment
	Conversations []Conversation
	Messages      []Message
	Notifications []Notification // most-recent-first
	Requests      []ConnectionRequest
	Connections   map[string]bool // viewer's accepted network

	// ID counters, one per entity type. Seeded entities use low ids so
	// generated ones never collide.
	nextPost         int
	nextComment      int
	nextMessage      int
	nextConversation int
	nextNotification int
	nextRequest      int
}

// ViewerID is the user the client acts as. The mock service has no
// authentication; the first seeded user is the session owner.
const ViewerID = "u1"

func (d *Dataset) postID() string         { d.nextPost++; return fmt.Sprintf("p%d", d.nextPost-1) }
func (d *Dataset) commentID() string      { d.nextComment++; return fmt.Sprintf("c%d", d.nextComment-1) }
func (d *Dataset) messageID() string      { d.nextMessage++; return fmt.Sprintf("m%d", d.nextMessage-1) }
func (d *Dataset) conversationID() string { d.nextConversation++; return fmt.Sprintf("cv%d", d.nextConversation-1) }
func (d *Dataset) notificationID() string { d.nextNotification++; return fmt.Sprintf("n%d", d.nextNotification-1) }
func (d *Dataset) requestID() string      { d.nextRequest++; return fmt.Sprintf("r%d", d.nextRequest-1) }

// UserByID returns the seeded user with the given id, or nil.
func (d *Dataset) UserByID(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Dataset) postByID(id string) *Post {
	for i := range d.Posts {
		if d.Posts[i].ID == id {
			return &d.Posts[i]
		}
	}
	return nil
}

// NewDataset seeds the deterministic fixture set: five users, eight
// posts, comment threads, two conversations, notifications, one pending
// connection request, and an initial connections set.
func NewDataset() *Dataset {
	now := time.Now()
	d := &Dataset{
		Users:            seedUsers(),
		Connections:      map[string]bool{"u2": true, "u5": true},
		nextPost:         100,
		nextComment:      100,
		nextMessage:      100,
		nextConversation: 100,
		nextNotification: 100,
		nextRequest:      100,
	}
	d.Posts = seedPosts(now)
	d.Comments = seedComments(now)
	d.Conversations, d.Messages = seedConversations(now)
	d.Notifications = seedNotifications(now)
	d.Requests = []ConnectionRequest{
		{ID: "r1", FromUserID: "u3", ToUserID: ViewerID, SentAt: now.Add(-36 * time.Hour)},
	}
	return d
}

func seedUsers() []User {
	return []User{
		{
			ID:          "u1",
			Name:        "Sarah Chen",
			Headline:    "Senior Frontend Engineer at Meta • React, TypeScript, Accessibility",
			CoverColor:  "#6366f1",
			Location:    "San Francisco, CA",
			Connections: 1284,
			About:       "Passionate about building inclusive, performant web experiences. 8+ years in frontend engineering with focus on design systems and accessibility.",
			Experience: []Experience{
				{Title: "Senior Frontend Engineer", Company: "Meta", Duration: "2022 – Present", Logo: "M"},
				{Title: "Frontend Engineer", Company: "Stripe", Duration: "2019 – 2022", Logo: "S"},
			},
			Skills: []string{"React", "TypeScript", "Accessibility", "Performance", "Design Systems", "GraphQL"},
		},
		{
			ID:          "u2",
			Name:        "Marcus Johnson",
			Headline:    "Engineering Manager @ Google • Building great teams",
			CoverColor:  "#34d399",
			Location:    "Seattle, WA",
			Connections: 2103,
			About:       "Leading frontend platform teams. Previously at Amazon and Netflix.",
			Experience: []Experience{
				{Title: "Engineering Manager", Company: "Google", Duration: "2023 – Present", Logo: "G"},
				{Title: "Senior Engineer", Company: "Amazon", Duration: "2020 – 2023", Logo: "A"},
			},
			Skills: []string{"Leadership", "React", "System Design", "Mentoring"},
		},
		{
			ID:          "u3",
			Name:        "Priya Sharma",
			Headline:    "Staff Engineer @ Netflix • Performance & Web Vitals",
			CoverColor:  "#f87171",
			Location:    "Los Angeles, CA",
			Connections: 956,
			About:       "Obsessed with web performance. Core Web Vitals evangelist.",
			Experience: []Experience{
				{Title: "Staff Engineer", Company: "Netflix", Duration: "2021 – Present", Logo: "N"},
			},
			Skills: []string{"Performance", "React", "Webpack", "Core Web Vitals"},
		},
		{
			ID:          "u4",
			Name:        "Alex Rivera",
			Headline:    "Design Engineer @ Vercel • UI/UX & Frontend",
			CoverColor:  "#fbbf24",
			Location:    "Austin, TX",
			Connections: 743,
			About:       "Bridging design and engineering. Making the web beautiful.",
			Experience: []Experience{
				{Title: "Design Engineer", Company: "Vercel", Duration: "2022 – Present", Logo: "V"},
			},
			Skills: []string{"CSS", "React", "Figma", "Animation", "TypeScript"},
		},
		{
			ID:          "u5",
			Name:        "Jordan Kim",
			Headline:    "Accessibility Lead @ Microsoft • WCAG, ARIA, Inclusive Design",
			CoverColor:  "#a78bfa",
			Location:    "Redmond, WA",
			Connections: 1567,
			About:       "Making technology work for everyone. W3C contributor.",
			Experience: []Experience{
				{Title: "Accessibility Lead", Company: "Microsoft", Duration: "2020 – Present", Logo: "Ms"},
			},
			Skills: []string{"Accessibility", "ARIA", "Screen Readers", "WCAG", "Inclusive Design"},
		},
	}
}

func seedPosts(now time.Time) []Post {
	return []Post{
		{
			ID:       "p1",
			AuthorID: "u1",
			Content: "Just shipped a major accessibility overhaul for our design system!\n\n" +
				"Key improvements:\n" +
				"• Full keyboard navigation across all components\n" +
				"• ARIA live regions for dynamic content\n" +
				"• Reduced motion support\n" +
				"• Screen reader announcements for state changes\n\n" +
				"Accessibility isn't a feature — it's a requirement.",
			CreatedAt: now.Add(-1 * time.Hour),
			Reactions: Reactions{ReactionLike: 142, ReactionCelebrate: 38, ReactionInsightful: 24},
			Comments:  18,
			Reposts:   7,
		},
		{
			ID:       "p2",
			AuthorID: "u2",
			Content: "Hot take: The best frontend engineers I've hired didn't just know React.\n\n" +
				"They understood:\n" +
				"→ Browser rendering pipeline\n" +
				"→ Network performance\n" +
				"→ Accessibility fundamentals\n" +
				"→ CSS layout algorithms\n" +
				"→ JavaScript event loop\n\n" +
				"Frameworks change. Fundamentals don't.",
			CreatedAt: now.Add(-2 * time.Hour),
			Reactions: Reactions{ReactionLike: 287, ReactionCelebrate: 12, ReactionInsightful: 95},
			Comments:  63,
			Reposts:   31,
		},
		{
			ID:       "p3",
			AuthorID: "u3",
			Content: "We reduced our LCP from 4.2s to 1.1s. Here's exactly how:\n\n" +
				"1. Moved to streaming SSR\n" +
				"2. Implemented resource hints (preconnect, prefetch)\n" +
				"3. Optimized critical rendering path\n" +
				"4. Lazy-loaded below-fold images\n" +
				"5. Eliminated render-blocking CSS\n\n" +
				"Core Web Vitals matter. Your users notice.",
			CreatedAt: now.Add(-4 * time.Hour),
			Reactions: Reactions{ReactionLike: 198, ReactionCelebrate: 67, ReactionSupport: 15},
			Comments:  42,
			Reposts:   19,
		},
		{
			ID:       "p4",
			AuthorID: "u4",
			Content: "Beautiful UI isn't just about aesthetics — it's about communication.\n\n" +
				"Every animation should have a purpose.\n" +
				"Every color choice should guide attention.\n" +
				"Every spacing decision should create hierarchy.",
			CreatedAt: now.Add(-8 * time.Hour),
			Reactions: Reactions{ReactionLike: 156, ReactionCelebrate: 23, ReactionInsightful: 41},
			Comments:  27,
			Reposts:   11,
		},
		{
			ID:       "p5",
			AuthorID: "u5",
			Content: "Reminder: 1 in 4 adults in the US has a disability.\n\n" +
				"If your app doesn't work with a keyboard, you've excluded millions.\n" +
				"If your contrast ratio is below 4.5:1, you've excluded millions.\n" +
				"If your forms don't have labels, you've excluded millions.\n\n" +
				"Accessibility is not optional.",
			CreatedAt: now.Add(-12 * time.Hour),
			Reactions: Reactions{ReactionLike: 324, ReactionCelebrate: 89, ReactionSupport: 112},
			Comments:  51,
			Reposts:   44,
		},
		{
			ID:       "p6",
			AuthorID: "u1",
			Content: "TypeScript tip that saved our team hours of debugging:\n\n" +
				"Use discriminated unions for your API responses instead of optional fields everywhere.\n\n" +
				"Pattern matching > null checking.",
			CreatedAt: now.Add(-16 * time.Hour),
			Reactions: Reactions{ReactionLike: 203, ReactionInsightful: 78, ReactionCelebrate: 15},
			Comments:  34,
			Reposts:   22,
		},
		{
			ID:       "p7",
			AuthorID: "u3",
			Content: "Your bundle size is your user's problem.\n\n" +
				"Just audited a React app:\n" +
				"• 2.4MB JavaScript (gzipped!)\n" +
				"• 47 npm packages for a CRUD app\n\n" +
				"Use dynamic imports. Tree-shake your dependencies. Your users on 3G will thank you.",
			CreatedAt: now.Add(-20 * time.Hour),
			Reactions: Reactions{ReactionLike: 178, ReactionInsightful: 56, ReactionCelebrate: 8},
			Comments:  29,
			Reposts:   16,
		},
		{
			ID:       "p8",
			AuthorID: "u2",
			Content: "Promoted two engineers to senior this quarter. What they had in common:\n\n" +
				"1. They didn't wait for permission to solve problems\n" +
				"2. They elevated everyone around them\n" +
				"3. They communicated clearly and proactively\n" +
				"4. They owned their mistakes publicly\n" +
				"5. They shipped with quality AND speed",
			CreatedAt: now.Add(-24 * time.Hour),
			Reactions: Reactions{ReactionLike: 412, ReactionCelebrate: 134, ReactionInsightful: 67},
			Comments:  89,
			Reposts:   52,
		},
	}
}

func seedComments(now time.Time) []Comment {
	return []Comment{
		{ID: "c1", PostID: "p1", AuthorID: "u2", Content: "Huge win for the whole org. Congrats to the team!", CreatedAt: now.Add(-50 * time.Minute)},
		{ID: "c2", PostID: "p1", AuthorID: "u5", Content: "The live region work especially — this is how it should be done.", CreatedAt: now.Add(-40 * time.Minute)},
		{ID: "c3", PostID: "p1", AuthorID: "u1", ParentID: "c2", Content: "Thanks Jordan, your WCAG talk was a big influence.", CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "c4", PostID: "p2", AuthorID: "u3", Content: "Would add: HTTP caching semantics. Bitten by that more than once.", CreatedAt: now.Add(-90 * time.Minute)},
		{ID: "c5", PostID: "p3", AuthorID: "u4", Content: "Curious how much of the win came from the SSR move alone?", CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "c6", PostID: "p3", AuthorID: "u3", ParentID: "c5", Content: "Roughly half. The resource hints were the sleeper hit.", CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func seedConversations(now time.Time) ([]Conversation, []Message) {
	messages := []Message{
		{ID: "m1", ConversationID: "cv1", SenderID: "u2", Content: "Hey Sarah, saw the design system launch. Really impressive work.", SentAt: now.Add(-3 * time.Hour)},
		{ID: "m2", ConversationID: "cv1", SenderID: "u1", Content: "Thanks Marcus! The team pushed hard for it.", SentAt: now.Add(-170 * time.Minute)},
		{ID: "m3", ConversationID: "cv1", SenderID: "u2", Content: "Would love to have you talk at our eng all-hands about the a11y process.", SentAt: now.Add(-160 * time.Minute)},
		{ID: "m4", ConversationID: "cv2", SenderID: "u5", Content: "Sarah — the ARIA patterns doc you shared is making the rounds here.", SentAt: now.Add(-26 * time.Hour)},
		{ID: "m5", ConversationID: "cv2", SenderID: "u1", Content: "That's great to hear! Happy to pair on the tricky widgets anytime.", SentAt: now.Add(-25 * time.Hour)},
	}
	conversations := []Conversation{
		{ID: "cv1", ParticipantIDs: [2]string{"u1", "u2"}, LastMessage: &messages[2], Unread: 1},
		{ID: "cv2", ParticipantIDs: [2]string{"u1", "u5"}, LastMessage: &messages[4]},
	}
	return conversations, messages
}

func seedNotifications(now time.Time) []Notification {
	return []Notification{
		{ID: "n1", Kind: NotifyReaction, FromUserID: "u2", CreatedAt: now.Add(-2 * time.Hour), PostID: "p1", Message: "Marcus Johnson reacted to your post"},
		{ID: "n2", Kind: NotifyComment, FromUserID: "u3", CreatedAt: now.Add(-4 * time.Hour), PostID: "p1", Message: "Priya Sharma commented on your post"},
		{ID: "n3", Kind: NotifyConnectionAccepted, FromUserID: "u5", CreatedAt: now.Add(-24 * time.Hour), Read: true, Message: "Jordan Kim accepted your connection request"},
		{ID: "n4", Kind: NotifyMention, FromUserID: "u4", CreatedAt: now.Add(-48 * time.Hour), Read: true, PostID: "p4", Message: "Alex Rivera mentioned you in a comment"},
		{ID: "n5", Kind: NotifyReaction, FromUserID: "u3", CreatedAt: now.Add(-72 * time.Hour), Read: true, PostID: "p6", Message: "Your post reached 200 reactions!"},
	}
}
