package usecase

import (
	"sort"
	"strings"

	"go-careercoach-backend/internal/domain"
)

// Static substitute content served whenever the analysis service or its
// upstream job feeds are unavailable.

const (
	// FallbackSource marks listings served from static data.
	FallbackSource = "fallback_data"

	// fallbackResumeScore is assigned when a resume could not be analyzed.
	fallbackResumeScore = 65
)

// fallbackResumeSkills is the minimal skill set assigned when resume
// analysis is unavailable.
var fallbackResumeSkills = []string{"JavaScript", "HTML", "CSS"}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func fallbackJobs() []domain.Job {
	return []domain.Job{
		{
			Title:        "Full Stack Developer",
			Company:      "TechCorp",
			Location:     "Remote",
			Salary:       strPtr("$80,000 - $120,000"),
			Description:  "Looking for a full stack developer with React, Node.js, and Python experience.",
			Requirements: []string{"React", "Node.js", "Python", "SQL", "Git"},
			MatchScore:   intPtr(85),
			PostedAt:     strPtr("2025-01-20"),
			ApplyURL:     strPtr("https://example.com/apply"),
		},
		{
			Title:        "Frontend Developer",
			Company:      "WebStudio",
			Location:     "Remote",
			Salary:       strPtr("$70,000 - $100,000"),
			Description:  "Frontend developer needed for modern React applications with TypeScript.",
			Requirements: []string{"React", "TypeScript", "HTML", "CSS", "JavaScript"},
			MatchScore:   intPtr(78),
			PostedAt:     strPtr("2025-01-19"),
			ApplyURL:     strPtr("https://example.com/apply2"),
		},
		{
			Title:        "Python Developer",
			Company:      "DataTech",
			Location:     "Remote",
			Salary:       strPtr("$75,000 - $110,000"),
			Description:  "Python developer for data processing and web applications.",
			Requirements: []string{"Python", "Django", "PostgreSQL", "Docker"},
			MatchScore:   intPtr(72),
			PostedAt:     strPtr("2025-01-18"),
			ApplyURL:     strPtr("https://example.com/apply3"),
		},
	}
}

// demandSkillsList is the fixed in-demand skills reference served by the
// skills endpoint. Not derived from live data.
func demandSkillsList() []domain.DemandSkill {
	return []domain.DemandSkill{
		{Name: "Machine Learning", DemandLevel: 95, GrowthRate: 25, AvgSalary: 130000},
		{Name: "AWS", DemandLevel: 92, GrowthRate: 30, AvgSalary: 125000},
		{Name: "Python", DemandLevel: 90, GrowthRate: 15, AvgSalary: 110000},
		{Name: "JavaScript", DemandLevel: 88, GrowthRate: 10, AvgSalary: 100000},
		{Name: "React", DemandLevel: 85, GrowthRate: 20, AvgSalary: 105000},
		{Name: "TypeScript", DemandLevel: 82, GrowthRate: 28, AvgSalary: 110000},
		{Name: "Docker", DemandLevel: 80, GrowthRate: 22, AvgSalary: 115000},
		{Name: "Kubernetes", DemandLevel: 78, GrowthRate: 35, AvgSalary: 130000},
		{Name: "Node.js", DemandLevel: 75, GrowthRate: 12, AvgSalary: 105000},
		{Name: "GraphQL", DemandLevel: 70, GrowthRate: 40, AvgSalary: 115000},
		{Name: "Terraform", DemandLevel: 65, GrowthRate: 45, AvgSalary: 120000},
		{Name: "Vue.js", DemandLevel: 60, GrowthRate: 18, AvgSalary: 95000},
	}
}

type pathTemplate struct {
	title          string
	description    string
	requiredSkills []string
	timeline       string
	salaryRange    string
	icon           string
}

var pathTemplates = []pathTemplate{
	{
		title:          "Frontend Developer",
		description:    "Specialize in user interface development with modern frameworks",
		requiredSkills: []string{"HTML", "CSS", "JavaScript", "React", "TypeScript"},
		timeline:       "6-12 months",
		salaryRange:    "$60,000 - $120,000",
		icon:           "monitor",
	},
	{
		title:          "Backend Developer",
		description:    "Focus on server-side development and API design",
		requiredSkills: []string{"Python", "Node.js", "SQL", "MongoDB", "Express.js"},
		timeline:       "8-14 months",
		salaryRange:    "$70,000 - $130,000",
		icon:           "server",
	},
	{
		title:          "Full Stack Developer",
		description:    "Master both frontend and backend technologies",
		requiredSkills: []string{"React", "Node.js", "Python", "SQL", "Git", "Docker"},
		timeline:       "12-18 months",
		salaryRange:    "$80,000 - $140,000",
		icon:           "layers",
	},
	{
		title:          "Data Scientist",
		description:    "Analyze data and build machine learning models",
		requiredSkills: []string{"Python", "Machine Learning", "SQL", "Statistics", "Pandas"},
		timeline:       "10-16 months",
		salaryRange:    "$90,000 - $150,000",
		icon:           "trending-up",
	},
}

// fallbackCareerPaths builds the static career path set, splitting each
// template's required skills into matching/missing by set difference
// against the user's current skills. Sorted best match first.
func fallbackCareerPaths(userSkills []string) []domain.CareerPath {
	have := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		have[strings.ToLower(s)] = true
	}

	paths := make([]domain.CareerPath, 0, len(pathTemplates))
	for _, tpl := range pathTemplates {
		var matching, missing []string
		for _, skill := range tpl.requiredSkills {
			if have[strings.ToLower(skill)] {
				matching = append(matching, skill)
			} else {
				missing = append(missing, skill)
			}
		}
		percentage := len(matching) * 100 / len(tpl.requiredSkills)

		paths = append(paths, domain.CareerPath{
			Title:           tpl.title,
			Description:     tpl.description,
			RequiredSkills:  tpl.requiredSkills,
			MatchingSkills:  matching,
			MissingSkills:   missing,
			MatchPercentage: intPtr(percentage),
			Timeline:        tpl.timeline,
			SalaryRange:     tpl.salaryRange,
			Icon:            tpl.icon,
		})
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return *paths[i].MatchPercentage > *paths[j].MatchPercentage
	})
	return paths
}

// FallbackCourses is the fixed free course catalog, seeded into the
// store the first time the listing finds it empty.
func FallbackCourses() []domain.Course {
	return []domain.Course{
		{
			Title:       "Responsive Web Design",
			Description: "Build responsive pages with HTML and CSS, from flexbox to accessibility.",
			Provider:    "freeCodeCamp",
			Duration:    "300 hours",
			Level:       "beginner",
			Rating:      floatPtr(4.8),
			CourseURL:   "https://www.freecodecamp.org/learn/2022/responsive-web-design/",
			IsFree:      true,
			Category:    "Web Development",
		},
		{
			Title:       "JavaScript Algorithms and Data Structures",
			Description: "Core JavaScript: ES6, regular expressions, OOP and functional programming.",
			Provider:    "freeCodeCamp",
			Duration:    "300 hours",
			Level:       "beginner",
			Rating:      floatPtr(4.7),
			CourseURL:   "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/",
			IsFree:      true,
			Category:    "Programming",
		},
		{
			Title:       "CS50: Introduction to Computer Science",
			Description: "Harvard's entry-level computer science course covering C, Python, SQL and web basics.",
			Provider:    "edX",
			Duration:    "12 weeks",
			Level:       "beginner",
			Rating:      floatPtr(4.9),
			CourseURL:   "https://www.edx.org/learn/computer-science/harvard-university-cs50-s-introduction-to-computer-science",
			IsFree:      true,
			Category:    "Programming",
		},
		{
			Title:       "Python for Everybody",
			Description: "Programming fundamentals and data handling with Python, no prerequisites.",
			Provider:    "Coursera",
			Duration:    "8 weeks",
			Level:       "beginner",
			Rating:      floatPtr(4.8),
			CourseURL:   "https://www.coursera.org/specializations/python",
			IsFree:      true,
			Category:    "Programming",
		},
		{
			Title:       "Intro to Machine Learning",
			Description: "Learn the core ideas of machine learning and build your first models.",
			Provider:    "Kaggle",
			Duration:    "3 hours",
			Level:       "intermediate",
			Rating:      floatPtr(4.6),
			CourseURL:   "https://www.kaggle.com/learn/intro-to-machine-learning",
			IsFree:      true,
			Category:    "Data Science",
		},
		{
			Title:       "The Odin Project: Full Stack JavaScript",
			Description: "Project-driven full stack path: Node.js, Express, MongoDB and React.",
			Provider:    "The Odin Project",
			Duration:    "Self-paced",
			Level:       "intermediate",
			Rating:      floatPtr(4.7),
			CourseURL:   "https://www.theodinproject.com/paths/full-stack-javascript",
			IsFree:      true,
			Category:    "Web Development",
		},
	}
}
