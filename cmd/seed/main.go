// Offline batch seeder. Populates institutes, accounts, students,
// courses and results for local development and load testing. Runs
// entirely outside the request-serving core.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"gorm.io/gorm"

	"acadrec/internal/auth"
	"acadrec/internal/config"
	"acadrec/internal/db"
	"acadrec/internal/models"
)

const commonPassword = "password123"

var instituteSeeds = []models.Institute{
	{Name: "Northfield Institute of Technology", Location: "Northfield"},
	{Name: "Riverside College", Location: "Riverside"},
	{Name: "Lakeshore University", Location: "Lakeshore"},
	{Name: "Hillcrest Academy", Location: "Hillcrest"},
}

var courseSeeds = []models.Course{
	{Title: "Introduction to Programming", Code: "CS-101", Credits: 3},
	{Title: "Data Structures & Algorithms", Code: "CS-201", Credits: 4},
	{Title: "Calculus I", Code: "MATH-101", Credits: 4},
	{Title: "World History", Code: "HIS-101", Credits: 3},
	{Title: "Linear Algebra", Code: "MATH-201", Credits: 3},
	{Title: "Operating Systems", Code: "CS-301", Credits: 4},
}

func main() {
	var (
		studentCount = flag.Int("students", 200, "number of students to create")
		workerCount  = flag.Int("workers", 8, "concurrent insert workers")
		seed         = flag.Int64("seed", 42, "rng seed for reproducible data")
		wipe         = flag.Bool("wipe", false, "delete existing rows first")
	)
	flag.Parse()

	cfg := config.Load()
	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if *wipe {
		// Children before parents; cascades handle the rest.
		for _, m := range []interface{}{&models.Result{}, &models.Student{}, &models.Course{}, &models.Institute{}, &models.User{}} {
			if err := gdb.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				log.Fatalf("failed to wipe %T: %v", m, err)
			}
		}
		log.Println("existing rows removed")
	}

	hashed, err := auth.HashPassword(commonPassword, 10)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	institutes := make([]models.Institute, len(instituteSeeds))
	copy(institutes, instituteSeeds)
	for i := range institutes {
		if err := gdb.Create(&institutes[i]).Error; err != nil {
			log.Fatalf("failed to seed institute: %v", err)
		}
	}

	courses := make([]models.Course, len(courseSeeds))
	copy(courses, courseSeeds)
	for i := range courses {
		if err := gdb.Create(&courses[i]).Error; err != nil {
			log.Fatalf("failed to seed course: %v", err)
		}
	}

	admin := models.User{Email: "admin@acadrec.local", Password: hashed, Role: models.RoleAdmin}
	if err := gdb.Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Fan student creation out to a bounded worker pool. Each job is
	// independent, so failures are counted rather than aborting the run.
	rng := rand.New(rand.NewSource(*seed))
	type job struct {
		n    int
		inst models.Institute
		// result parameters are drawn up front so output is
		// reproducible regardless of worker interleaving
		years  []int
		scores []float64
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for w := 0; w < *workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := seedStudent(gdb, j.n, j.inst, hashed, courses, j.years, j.scores); err != nil {
					mu.Lock()
					failures++
					mu.Unlock()
					log.Printf("student %d: %v", j.n, err)
				}
			}
		}()
	}

	for n := 0; n < *studentCount; n++ {
		resultCount := 1 + rng.Intn(4)
		j := job{
			n:      n,
			inst:   institutes[rng.Intn(len(institutes))],
			years:  make([]int, resultCount),
			scores: make([]float64, resultCount),
		}
		for i := 0; i < resultCount; i++ {
			j.years[i] = 2020 + rng.Intn(6)
			j.scores[i] = float64(rng.Intn(1001)) / 10
		}
		jobs <- j
	}
	close(jobs)
	wg.Wait()

	log.Printf("seeding complete: %d institutes, %d courses, %d students requested, %d failures",
		len(institutes), len(courses), *studentCount, failures)
}

func seedStudent(gdb *gorm.DB, n int, inst models.Institute, hashed string, courses []models.Course, years []int, scores []float64) error {
	email := fmt.Sprintf("student%04d@acadrec.local", n)
	return gdb.Transaction(func(tx *gorm.DB) error {
		user := models.User{Email: email, Password: hashed, Role: models.RoleStudent}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student := models.Student{
			Name:        fmt.Sprintf("Student %04d", n),
			Email:       email,
			InstituteID: inst.ID,
			UserID:      user.ID,
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}
		for i := range years {
			result := models.Result{
				StudentID: student.ID,
				CourseID:  courses[(n+i)%len(courses)].ID,
				Score:     scores[i],
				Grade:     gradeFor(scores[i]),
				Year:      years[i],
			}
			if err := tx.Create(&result).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func gradeFor(score float64) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "A-"
	case score >= 80:
		return "B+"
	case score >= 75:
		return "B"
	case score >= 70:
		return "B-"
	case score >= 65:
		return "C+"
	case score >= 60:
		return "C"
	case score >= 55:
		return "C-"
	case score >= 50:
		return "D+"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}
