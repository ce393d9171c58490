package catalog

import "showcase.dev/internal/models"

// defaultProjects is the built-in table served when no catalog file is configured
var defaultProjects = []models.Project{
	{
		Title:       "EVOLVE-X",
		Subtitle:    "AI Internship Allocations",
		Icon:        "🤖",
		Description: "AI-powered platform matching students with internships under PM Internship Scheme using NLP and ML algorithms.",
		TechStack:   []string{"React", "JavaScript", "NLP", "ML", "Chart.js"},
		Features:    []string{"94.7% match accuracy", "100% quota compliance", "Explainable AI", "6 AI modules"},
		Gradient:    "var(--gradient-1)",
		DemoLink:    "https://evolve-x-sams-projects-1b56e3de.vercel.app/",
		Screenshot:  "/projects/evolve-x.png",
		FullDescription: "EVOLVE-X is a comprehensive AI-powered internship allocation system that uses advanced NLP and genetic " +
			"algorithms to match students with the perfect internships. The platform analyzes resumes, skills, and preferences " +
			"to ensure optimal placement while maintaining 100% quota compliance.",
		Highlights: []string{
			"Natural Language Processing for resume analysis",
			"Genetic algorithms for optimal matching",
			"Real-time dashboard with analytics",
			"Multi-criteria decision making",
			"Automated notification system",
			"Explainable AI recommendations",
		},
	},
	{
		Title:       "POWER-PULSE",
		Subtitle:    "Procurement Platform",
		Icon:        "⚡",
		Description: "Intelligent procurement management system with AI-driven demand forecasting for power transmission industry.",
		TechStack:   []string{"HTML5", "CSS3", "JavaScript", "Chart.js", "ML"},
		Features:    []string{"94.2% forecast accuracy", "6 role dashboards", "Real-time inventory", "Analytics"},
		Gradient:    "var(--gradient-2)",
		DemoLink:    "https://power-pulse-mu.vercel.app/",
		GitHubLink:  "https://github.com/yourusername/power-pulse",
		Screenshot:  "/projects/power-pulse.png",
		FullDescription: "POWER-PULSE revolutionizes procurement management for the power transmission industry with AI-driven " +
			"demand forecasting and real-time inventory tracking. The system provides role-based dashboards for different stakeholders.",
		Highlights: []string{
			"AI-powered demand forecasting",
			"Multi-role access control",
			"Real-time inventory management",
			"Automated purchase orders",
			"Vendor management system",
			"Advanced analytics and reporting",
		},
	},
	{
		Title:       "TASKMASTER PRO",
		Subtitle:    "Advanced Todo App",
		Icon:        "✅",
		Description: "Productivity app with drag-drop Kanban, XP system, and time tracking.",
		TechStack:   []string{"React 18", "Context API", "Framer Motion", "LocalStorage"},
		Features:    []string{"4 views", "Gamification", "Pomodoro timer", "6 themes"},
		Gradient:    "var(--gradient-3)",
		DemoLink:    "https://advanced-motivational-todo.vercel.app/",
		Screenshot:  "/projects/taskmaster-pro.png",
		FullDescription: "TASKMASTER PRO is a feature-rich productivity application that combines task management with " +
			"gamification. Built with React 18 and Framer Motion, it offers smooth animations and multiple view modes.",
		Highlights: []string{
			"Drag-and-drop Kanban board",
			"XP and leveling system",
			"Pomodoro timer integration",
			"Multiple view modes",
			"6 beautiful themes",
			"LocalStorage persistence",
		},
	},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultProjects)
	if err != nil {
		panic("invalid built-in catalog: " + err.Error())
	}
	return c
}
