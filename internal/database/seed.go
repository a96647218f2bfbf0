package database

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/careernav/backend/internal/models"
)

// Seed inserts the sample catalog on an empty database so a fresh
// install has something to browse. It is a no-op once courses exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	courses := []models.Course{
		{
			Title:        "Python Fundamentals",
			Description:  "Learn Python programming from scratch",
			Difficulty:   "Beginner",
			Category:     "Programming",
			Duration:     "4 weeks",
			SkillsTaught: jsonList("Python basics", "Data types", "Control flow", "Functions"),
			Content:      "Comprehensive Python course content...",
		},
		{
			Title:        "Web Development with React",
			Description:  "Build modern web applications",
			Difficulty:   "Intermediate",
			Category:     "Web Development",
			Duration:     "6 weeks",
			SkillsTaught: jsonList("React.js", "JavaScript", "HTML/CSS", "State Management"),
			Content:      "React development course content...",
		},
		{
			Title:        "Machine Learning Basics",
			Description:  "Introduction to ML concepts and algorithms",
			Difficulty:   "Advanced",
			Category:     "Data Science",
			Duration:     "8 weeks",
			SkillsTaught: jsonList("ML Algorithms", "Python", "scikit-learn", "Data Analysis"),
			Content:      "Machine learning course content...",
		},
	}

	jobs := []models.Job{
		{
			Title:        "Junior Python Developer",
			Company:      "TechCorp Inc.",
			Description:  "Entry-level Python developer position",
			Requirements: "Python, Flask, Git, SQL",
			SalaryRange:  "$50,000 - $70,000",
			Location:     "Remote",
			JobType:      "Full-time",
		},
		{
			Title:        "React Frontend Developer",
			Company:      "WebSolutions Ltd.",
			Description:  "Frontend developer specializing in React",
			Requirements: "React.js, JavaScript, HTML/CSS, Git",
			SalaryRange:  "$60,000 - $85,000",
			Location:     "New York, NY",
			JobType:      "Full-time",
		},
		{
			Title:        "Data Analyst Intern",
			Company:      "DataDriven Co.",
			Description:  "Internship in data analysis and visualization",
			Requirements: "Python, Pandas, SQL, Statistics",
			SalaryRange:  "$15 - $20/hour",
			Location:     "San Francisco, CA",
			JobType:      "Internship",
		},
	}

	if err := db.Create(&courses).Error; err != nil {
		return err
	}
	return db.Create(&jobs).Error
}

func jsonList(items ...string) datatypes.JSON {
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}
