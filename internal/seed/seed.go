// Package seed provides the static dataset the workspace boots from. The
// data is fixed: every process start resets state to exactly this snapshot.
package seed

import (
	"time"

	"github.com/mohanvarma22/bcommune/internal/domain"
	"github.com/mohanvarma22/bcommune/internal/store"
)

// CurrentUserID is the signed-in user the workspace starts as.
const CurrentUserID = "user-arjun"

var epoch = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return epoch.AddDate(0, 0, -n)
}

// Snapshot builds the boot dataset.
func Snapshot() store.Snapshot {
	return store.Snapshot{
		CurrentUserID: CurrentUserID,
		Users:         users(),
		Companies:     companies(),
		Jobs:          jobs(),
		Stories:       stories(),
		Events:        events(),
		Ventures:      ventures(),
		Signals:       signals(),
		Conversations: conversations(),
		Notifications: notifications(),
		Dashboards:    dashboards(),
	}
}

func users() []domain.User {
	return []domain.User{
		{
			ID:            "user-arjun",
			Name:          "Arjun Mehta",
			Title:         "Full-Stack Engineer & Founder",
			Location:      "Bengaluru, India",
			Email:         "arjun@bcommune.dev",
			Phone:         "+91 98765 43210",
			EmailVerified: true,
			Vision:        "Software should make small teams feel like big ones.",
			Skills:        []string{"Go", "React", "PostgreSQL", "System Design"},
			Experience: []domain.Experience{
				{Role: "Senior Engineer", Company: "Zephyr Payments", Period: "2021-2024", Description: "Led the ledger team through a rewrite of the settlement pipeline."},
				{Role: "Engineer", Company: "Karta Logistics", Period: "2018-2021", Description: "Built route-planning services handling 50k deliveries a day."},
			},
			Portfolio: []domain.Project{
				{Name: "ledgerd", Description: "Double-entry bookkeeping daemon with an append-only store.", IsFeatured: true},
				{Name: "hopper", Description: "Queue visualizer for delivery routing."},
			},
			Education: []domain.Education{
				{Institution: "IIT Madras", Degree: "B.Tech Computer Science", Period: "2014-2018"},
			},
			Languages:   []domain.Language{{Name: "English", Proficiency: "Fluent"}, {Name: "Hindi", Proficiency: "Native"}},
			Connections: []string{"user-priya"},
			CompanyIDs:  []string{"company-bcommune"},
			VentureIDs:  []string{"venture-farmlink"},
		},
		{
			ID:            "user-priya",
			Name:          "Priya Sharma",
			Title:         "Product Designer",
			Location:      "Mumbai, India",
			Email:         "priya@nexusdynamics.io",
			EmailVerified: true,
			Vision:        "Design is how a product treats people.",
			Skills:        []string{"Figma", "Design Systems", "User Research"},
			Experience: []domain.Experience{
				{Role: "Lead Designer", Company: "Nexus Dynamics", Period: "2020-", Description: "Owns the design system across three product lines."},
			},
			Portfolio: []domain.Project{
				{Name: "atlas-ui", Description: "Open-source component library used by 40 teams."},
			},
			Connections: []string{"user-arjun"},
			CompanyIDs:  []string{"company-nexus"},
			VentureIDs:  []string{"venture-medisync"},
		},
		{
			ID:       "user-rahul",
			Name:     "Rahul Verma",
			Title:    "Backend Engineer",
			Location: "Pune, India",
			Email:    "rahul.verma@mail.dev",
			Vision:   "Boring infrastructure is a feature.",
			Skills:   []string{"Go", "Kubernetes", "gRPC"},
			Experience: []domain.Experience{
				{Role: "Engineer", Company: "CloudStack Co", Period: "2019-", Description: "Runs the multi-tenant job scheduler."},
			},
			Portfolio: []domain.Project{
				{Name: "cronfold", Description: "Distributed cron with jitter-aware scheduling."},
			},
		},
		{
			ID:       "user-sneha",
			Name:     "Sneha Iyer",
			Title:    "Data Scientist",
			Location: "Chennai, India",
			Email:    "sneha.iyer@mail.dev",
			Vision:   "Models are opinions encoded in math; hold them accountable.",
			Skills:   []string{"Python", "SQL", "Forecasting"},
			Experience: []domain.Experience{
				{Role: "Data Scientist", Company: "AgriSense", Period: "2020-", Description: "Built crop-yield forecasts for 12 states."},
			},
		},
	}
}

func companies() []domain.Company {
	return []domain.Company{
		{
			ID:         "company-bcommune",
			Name:       "Bcommune Labs",
			Tagline:    "The operating system for builders",
			Website:    "https://bcommune.dev",
			Location:   "Bengaluru, India",
			Industry:   "Software",
			Size:       "2-10",
			About:      "Building the workspace where founders, talent, and believers meet.",
			Vision:     "Every builder deserves a fair shot at being found.",
			IsVerified: true,
			Team: []domain.TeamMember{
				{UserID: "user-arjun", Role: domain.TeamRoleOwner},
			},
		},
		{
			ID:       "company-nexus",
			Name:     "Nexus Dynamics",
			Tagline:  "Industrial software that ships",
			Website:  "https://nexusdynamics.io",
			Location: "Mumbai, India",
			Industry: "Industrial IoT",
			Size:     "51-200",
			About:    "Sensor-to-dashboard platforms for heavy industry.",
			Vision:   "Factories that explain themselves.",
			Team: []domain.TeamMember{
				{UserID: "user-priya", Role: domain.TeamRoleOwner},
			},
		},
	}
}

func jobs() []domain.Job {
	return []domain.Job{
		{
			ID:              "job-backend",
			Title:           "Backend Engineer",
			CompanyID:       "company-bcommune",
			Location:        "Remote (India)",
			Type:            domain.JobFullTime,
			PostedAt:        daysAgo(10),
			Status:          domain.JobOpen,
			Description:     "Own the core services behind the workspace: feeds, messaging, and the hiring pipeline. Small team, wide scope, production from week one.",
			Skills:          []string{"Go", "PostgreSQL", "gRPC"},
			PosterID:        "user-arjun",
			SalaryRange:     "₹25L - ₹40L",
			ExperienceLevel: domain.LevelSenior,
			Responsibilities: []string{
				"Design and run the messaging and notification services",
				"Keep p99 latency under 100ms as the graph grows",
			},
			Qualifications: []string{
				"4+ years building networked services",
				"Comfort owning a service end to end",
			},
			Benefits: []string{"Equity", "Remote-first", "Hardware budget"},
			InterviewRounds: []domain.InterviewRound{
				{Name: "Technical Interview", Description: "Systems deep dive with the founding team"},
				{Name: "Culture Fit", Description: "Working-style conversation"},
			},
			Applicants: []domain.ApplicantDetail{
				{UserID: "user-rahul", Status: domain.StatusApplied},
				{UserID: "user-sneha", Status: domain.StatusShortlisted, Rating: 4, HasBeenReviewed: true},
			},
			Likes: 12,
		},
		{
			ID:              "job-designer",
			Title:           "Senior Product Designer",
			CompanyID:       "company-nexus",
			Location:        "Mumbai, India",
			Type:            domain.JobFullTime,
			PostedAt:        daysAgo(4),
			Status:          domain.JobOpen,
			Description:     "Shape how plant operators see their factories. You will pair with field engineers and ship to control rooms, not app stores.",
			Skills:          []string{"Figma", "Design Systems", "Data Visualization"},
			PosterID:        "user-priya",
			ExperienceLevel: domain.LevelMid,
			InterviewRounds: []domain.InterviewRound{
				{Name: "Portfolio Review"},
			},
		},
	}
}

func stories() []domain.Story {
	return []domain.Story{
		{
			ID:          "story-sideproject",
			Title:       "The side project that became the company",
			Excerpt:     "We kept the weekend repo. It kept us.",
			Content:     "Every founder has a graveyard of weekend repos. Ours survived because it solved a problem we had on Monday morning: finding the three people who actually cared about what we were building. This is the story of how a hiring spreadsheet became a product, what we threw away, and the one decision we would make again.",
			AuthorID:    "user-arjun",
			Engagements: []string{"user-priya", "user-rahul"},
			Likes:       34,
			Comments: []domain.Comment{
				{ID: "comment-seed-1", AuthorID: "user-priya", Text: "The spreadsheet era was real.", CreatedAt: daysAgo(6)},
			},
			Shares:      5,
			Category:    domain.CategoryFounderJourney,
			Tags:        []string{"founding", "hiring"},
			ReadingTime: 4,
			Status:      domain.StoryPublished,
		},
		{
			ID:          "story-designsystem",
			Title:       "A design system for control rooms",
			Excerpt:     "Dark mode is not an aesthetic when the room is actually dark.",
			Content:     "Control rooms are dim, operators are tired, and a misread gauge costs real money. Designing for that environment taught us more about contrast, hierarchy, and restraint than any dashboard project before it.",
			AuthorID:    "user-priya",
			CompanyID:   "company-nexus",
			Likes:       21,
			Shares:      2,
			Category:    domain.CategoryDesignThinking,
			Tags:        []string{"design-systems"},
			ReadingTime: 3,
			Status:      domain.StoryPublished,
		},
	}
}

func events() []domain.Event {
	return []domain.Event{
		{
			ID:          "event-meetup",
			Title:       "Builders & Believers Meetup",
			Date:        "2025-05-20",
			Time:        "18:30",
			Type:        domain.EventMeetup,
			Location:    "Bengaluru",
			Description: "An evening for founders and early believers: three lightning pitches, then open tables.",
			AuthorID:    "user-priya",
			RSVPs:       []string{"user-rahul"},
			TotalSlots:  80,
			Speakers: []domain.Speaker{
				{Name: "Arjun Mehta", Title: "Founder, Bcommune Labs"},
			},
			Agenda: []domain.AgendaItem{
				{Time: "18:30", Topic: "Doors & coffee"},
				{Time: "19:00", Topic: "Lightning pitches"},
			},
			Address: "WeWork Galaxy, Residency Road",
			Status:  domain.EventUpcoming,
		},
		{
			ID:          "event-walkin",
			Title:       "Nexus Dynamics Walk-in Day",
			Date:        "2025-05-27",
			Time:        "10:00",
			Type:        domain.EventWalkInInterview,
			Location:    "Mumbai",
			Description: "Same-day interviews for two open roles. Bring a laptop and something you built.",
			AuthorID:    "user-priya",
			CompanyID:   "company-nexus",
			Status:      domain.EventUpcoming,
			JobSlots: []domain.JobSlot{
				{Title: "Frontend Engineer", Description: "Operator-facing dashboards", Skills: []string{"TypeScript", "React"}},
				{Title: "UX Designer", Description: "Control-room workflows", Skills: []string{"Figma"}},
			},
			InterestedAttendees: []domain.InterestedAttendee{
				{UserID: "user-rahul", RoleTitle: "Frontend Engineer"},
			},
			RSVPs: []string{"user-rahul"},
		},
	}
}

func ventures() []domain.Venture {
	return []domain.Venture{
		{
			ID:                    "venture-farmlink",
			OwnerID:               "user-arjun",
			Name:                  "FarmLink",
			Tagline:               "Mandi prices in every farmer's pocket",
			Vision:                "Price transparency for the smallest sellers first.",
			Problem:               "Smallholder farmers sell at whatever price the nearest trader quotes.",
			Solution:              "A lightweight price feed with SMS fallback and local-language alerts.",
			Market:                []string{"AgTech", "Rural fintech"},
			Stage:                 domain.StageEarlyTraction,
			Seeking:               []string{"Android Engineer", "Growth"},
			InterestedUsers:       []string{"user-sneha"},
			FirstBelievers:        []string{"user-priya", "user-rahul"},
			AcknowledgedBelievers: []string{"user-priya"},
			SignalIDs:             []string{"signal-traction", "signal-poll"},
			Preferences: domain.VenturePreferences{
				Skills:   []string{"Kotlin", "Go"},
				Location: "India",
			},
			PrototypeLink: "https://farmlink.example/demo",
		},
		{
			ID:       "venture-medisync",
			OwnerID:  "user-priya",
			Name:     "MediSync",
			Tagline:  "One record, every clinic",
			Vision:   "Patients should never carry paper files between doctors.",
			Problem:  "Clinic records are siloed; referrals start from zero.",
			Solution: "Consent-driven record sync between small clinics.",
			Market:   []string{"HealthTech"},
			Stage:    domain.StagePrototype,
			Seeking:  []string{"Backend Engineer"},
		},
	}
}

func signals() []domain.Signal {
	return []domain.Signal{
		{
			ID:        "signal-poll",
			VentureID: "venture-farmlink",
			AuthorID:  "user-arjun",
			Type:      domain.SignalPoll,
			Content:   "Which district should the pilot expand to next?",
			CreatedAt: daysAgo(1),
			PollOptions: []domain.PollOption{
				{Text: "Nashik", Votes: []string{"user-priya"}},
				{Text: "Hubli", Votes: []string{"user-rahul"}},
				{Text: "Guntur"},
			},
			Likes: []string{"user-priya"},
		},
		{
			ID:        "signal-traction",
			VentureID: "venture-farmlink",
			AuthorID:  "user-arjun",
			Type:      domain.SignalUpdate,
			Content:   "Crossed 1,000 daily price checks. SMS fallback now covers three districts.",
			CreatedAt: daysAgo(3),
			Likes:     []string{"user-priya", "user-rahul"},
			Comments: []domain.Comment{
				{ID: "comment-seed-2", AuthorID: "user-rahul", Text: "The SMS fallback is the real moat.", CreatedAt: daysAgo(2)},
			},
		},
	}
}

func conversations() []domain.Conversation {
	return []domain.Conversation{
		{
			ID:             "conv-arjun-priya",
			ParticipantIDs: []string{"user-arjun", "user-priya"},
			Messages: []domain.ChatMessage{
				{ID: "msg-seed-1", SenderID: "user-priya", Text: "Saw the FarmLink traction update. Congrats!", SentAt: daysAgo(2), IsRead: true},
				{ID: "msg-seed-2", SenderID: "user-arjun", Text: "Thanks! Want to help us pick the next district?", SentAt: daysAgo(2), IsRead: true},
			},
		},
	}
}

func notifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:          "notif-seed-1",
			Type:        domain.NotifyInterest,
			ActorID:     "user-sneha",
			RecipientID: "user-arjun",
			CreatedAt:   daysAgo(1),
			IsRead:      true,
			TargetID:    "venture-farmlink",
			TargetType:  domain.TargetVenture,
		},
	}
}

func dashboards() []domain.SharedDashboard {
	return []domain.SharedDashboard{
		{
			ID:               "dash-backend-panel",
			JobID:            "job-backend",
			ApplicantUserIDs: []string{"user-rahul", "user-sneha"},
			CreatedAt:        daysAgo(2),
		},
	}
}
