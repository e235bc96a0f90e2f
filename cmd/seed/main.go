package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bakra-mandi/internal/model"
	"bakra-mandi/pkg/config"
	"bakra-mandi/pkg/database"
	"bakra-mandi/pkg/logger"
	"bakra-mandi/pkg/s3"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func main() {
	var mediaDir string
	flag.StringVar(&mediaDir, "media", "", "Directory of local reel videos to upload to S3 before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	var mediaURLs []string
	if mediaDir != "" {
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
		mediaURLs, err = uploadMedia(s3Client, mediaDir, log)
		if err != nil {
			log.Error("Failed to upload media: %v", err)
			panic(err)
		}
	}

	if err := seedDatabase(db, mediaURLs, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func uploadMedia(s3Client *s3.Client, dir string, log *logger.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read media directory: %w", err)
	}

	var urls []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mp4") {
			continue
		}

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", entry.Name(), err)
		}

		key := fmt.Sprintf("reels/%s%s", uuid.New().String(), filepath.Ext(entry.Name()))
		url, err := s3Client.UploadFile(key, f, "video/mp4")
		f.Close()
		if err != nil {
			return nil, err
		}

		log.Info("Uploaded %s -> %s", entry.Name(), url)
		urls = append(urls, url)
	}
	return urls, nil
}

func seedDatabase(db *gorm.DB, mediaURLs []string, log *logger.Logger) error {
	goats := []model.GoatModel{
		{
			Name:         "Sultan",
			Breed:        "Rajanpuri",
			Age:          "2 years",
			Weight:       "45 kg",
			Price:        85000,
			Description:  "Premium Rajanpuri goat, excellent for Eid sacrifice. Healthy and well-maintained.",
			ImageURL:     "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?w=500&h=400&fit=crop",
			IsAvailable:  true,
			Gender:       "Male",
			Color:        "Brown",
			HealthStatus: "Excellent",
		},
		{
			Name:         "Shahzada",
			Breed:        "Maaki Cheena",
			Age:          "1.5 years",
			Weight:       "38 kg",
			Price:        65000,
			Description:  "Beautiful Maaki Cheena goat with excellent genetics. Perfect for breeding or sacrifice.",
			ImageURL:     "https://images.unsplash.com/photo-1596854407944-bf87f6fdd49e?w=500&h=400&fit=crop",
			IsAvailable:  true,
			Gender:       "Male",
			Color:        "White",
			HealthStatus: "Excellent",
		},
		{
			Name:   "Malka",
			Breed:  "Rajanpuri",
			Age:    "3 years",
			Weight: "52 kg",
			Price:  95000,
			// Legacy row shape: extra gallery images rode inside the
			// description before the image_urls column existed. Kept here so
			// the resolution pipeline always has a real case to chew on.
			Description:  `{"description":"Large Rajanpuri goat, ideal for big families. Excellent meat quality and health.","additionalImages":["https://images.unsplash.com/photo-1551218808-94e220e084d2?w=500&h=400&fit=crop"]}`,
			ImageURL:     "https://images.unsplash.com/photo-1551218808-94e220e084d2?w=500&h=400&fit=crop",
			ImageURLs:    pq.StringArray{"https://images.unsplash.com/photo-1524024973431-2ad916746881?w=500&h=400&fit=crop"},
			IsAvailable:  true,
			Gender:       "Male",
			Color:        "Black",
			HealthStatus: "Excellent",
		},
	}

	for i := range goats {
		if err := db.Create(&goats[i]).Error; err != nil {
			return fmt.Errorf("failed to create goat %s: %w", goats[i].Name, err)
		}
		log.Info("Created goat: %s (%s)", goats[i].Name, goats[i].Breed)
	}

	titles := []string{"Morning at the farm", "Sultan up close", "Feeding time"}
	for i, title := range titles {
		url := fmt.Sprintf("https://cdn.example.com/reels/demo-%d.mp4", i+1)
		if i < len(mediaURLs) {
			url = mediaURLs[i]
		}
		video := model.VideoModel{
			Title:    title,
			VideoURL: url,
			IsActive: true,
		}
		if err := db.Create(&video).Error; err != nil {
			return fmt.Errorf("failed to create video %s: %w", title, err)
		}
		log.Info("Created video: %s", title)
	}

	return nil
}
