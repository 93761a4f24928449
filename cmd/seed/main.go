package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"dancenavi/internal/config"
	"dancenavi/internal/model"
	"dancenavi/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const schoolID = "demo-school"

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	campusRepo := repository.NewCampusRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	instructorRepo := repository.NewInstructorRepo(db)
	lessonRepo := repository.NewLessonRepo(db)
	resultRepo := repository.NewResultRepo(db)

	shibuya := &model.Campus{
		SchoolID: schoolID, Slug: "shibuya", Label: "渋谷校",
		Address: "東京都渋谷区宇田川町1-1", Access: "渋谷駅ハチ公口から徒歩5分",
		GoogleMapURL: "https://maps.google.com/?q=shibuya-studio",
		SortOrder:    1, IsActive: true,
	}
	shinjuku := &model.Campus{
		SchoolID: schoolID, Slug: "shinjuku", Label: "新宿校",
		Address: "東京都新宿区西新宿2-2", Access: "新宿駅西口から徒歩7分",
		SortOrder: 2, IsActive: true,
	}
	online := &model.Campus{
		SchoolID: schoolID, Slug: "online", Label: "オンライン校",
		IsOnline: true, SortOrder: 9, IsActive: true,
	}
	for _, campus := range []*model.Campus{shibuya, shinjuku, online} {
		if err := campusRepo.Create(ctx, campus); err != nil {
			log.Fatalf("Failed to insert campus %s: %v", campus.Slug, err)
		}
	}

	kpop := &model.Genre{SchoolID: schoolID, Slug: "kpop", Label: "K-POP", SortOrder: 1, IsActive: true}
	hiphop := &model.Genre{SchoolID: schoolID, Slug: "hiphop", Label: "HIPHOP", SortOrder: 2, IsActive: true}
	jazz := &model.Genre{SchoolID: schoolID, Slug: "jazz", Label: "JAZZ", SortOrder: 3, IsActive: true}
	themepark := &model.Genre{SchoolID: schoolID, Slug: "themepark", Label: "テーマパーク", SortOrder: 4, IsActive: true}
	for _, genre := range []*model.Genre{kpop, hiphop, jazz, themepark} {
		if err := genreRepo.Create(ctx, genre); err != nil {
			log.Fatalf("Failed to insert genre %s: %v", genre.Slug, err)
		}
	}

	// q2AnswerTags must carry the exact Q2 option labels from the catalog
	starter := &model.Course{
		SchoolID: schoolID, Slug: "starter", Label: "はじめてコース",
		Q2AnswerTags: []string{"ダンスは全くの未経験", "リズム取りから学びたい"},
		SortOrder:    1, IsActive: true,
	}
	regular := &model.Course{
		SchoolID: schoolID, Slug: "regular", Label: "レギュラーコース",
		Q2AnswerTags: []string{"基礎は一通りできる", "振付を踊り込みたい"},
		SortOrder:    2, IsActive: true,
	}
	advanced := &model.Course{
		SchoolID: schoolID, Slug: "advanced", Label: "アドバンスコース",
		Q2AnswerTags: []string{"経験者としてレベルアップしたい"},
		SortOrder:    3, IsActive: true,
	}
	for _, course := range []*model.Course{starter, regular, advanced} {
		if err := courseRepo.Create(ctx, course); err != nil {
			log.Fatalf("Failed to insert course %s: %v", course.Slug, err)
		}
	}

	miki := &model.Instructor{
		SchoolID: schoolID, Slug: "miki", Label: "MIKI",
		Styles:    []string{"Style_Healing", "Style_Logical"},
		CampusIDs: []string{shibuya.ID, online.ID},
		GenreIDs:  []string{kpop.ID, jazz.ID},
		CourseIDs: []string{starter.ID, regular.ID},
		SortOrder: 1, IsActive: true,
	}
	ryo := &model.Instructor{
		SchoolID: schoolID, Slug: "ryo", Label: "RYO",
		Styles:    []string{"Style_Energetic", "Style_Strict"},
		CampusIDs: []string{shibuya.ID, shinjuku.ID},
		GenreIDs:  []string{hiphop.ID},
		CourseIDs: []string{regular.ID, advanced.ID},
		SortOrder: 2, IsActive: true,
	}
	yuna := &model.Instructor{
		SchoolID: schoolID, Slug: "yuna", Label: "YUNA",
		Styles:    []string{"Style_Healing", "Style_Energetic"},
		CampusIDs: []string{shinjuku.ID},
		GenreIDs:  []string{kpop.ID, themepark.ID},
		CourseIDs: []string{starter.ID},
		SortOrder: 3, IsActive: true,
	}
	for _, instructor := range []*model.Instructor{miki, ryo, yuna} {
		if err := instructorRepo.Create(ctx, instructor); err != nil {
			log.Fatalf("Failed to insert instructor %s: %v", instructor.Slug, err)
		}
	}

	lessons := []*model.Lesson{
		{
			SchoolID: schoolID, CampusID: shibuya.ID, Name: "K-POP入門",
			Genres: []string{"kpop"}, Levels: []string{"Lv0_超入門", "Lv1_入門"},
			Targets:       []string{"Age_Student", "Age_Adult_Work"},
			InstructorIDs: []string{miki.ID},
			SortOrder:     1, IsActive: true,
		},
		{
			SchoolID: schoolID, CampusID: shibuya.ID, Name: "K-POP初級",
			Genres: []string{"kpop"}, Levels: []string{"Lv2_初級"},
			Targets:       []string{"Age_Adult_Work"},
			InstructorIDs: []string{miki.ID},
			SortOrder:     2, IsActive: true,
		},
		{
			SchoolID: schoolID, CampusID: shibuya.ID, Name: "HIPHOP中上級",
			Genres: []string{"hiphop"}, Levels: []string{"Lv4_中上級"},
			Targets:       []string{"Age_Student"},
			InstructorIDs: []string{ryo.ID},
			SortOrder:     3, IsActive: true,
		},
		{
			SchoolID: schoolID, CampusID: shinjuku.ID, Name: "テーマパーク入門",
			Genres: []string{"themepark"}, Levels: []string{"Lv1_入門", "Lv2_初級"},
			Targets:       []string{"Age_Kids", "Age_Student"},
			InstructorIDs: []string{yuna.ID},
			SortOrder:     1, IsActive: true,
		},
	}
	for _, lesson := range lessons {
		if err := lessonRepo.Create(ctx, lesson); err != nil {
			log.Fatalf("Failed to insert lesson %s: %v", lesson.Name, err)
		}
	}

	results := []*model.Result{
		{
			SchoolID: schoolID,
			Title:    "渋谷校のK-POPクラスがおすすめ！",
			Body:     "あなたの回答から、渋谷校のK-POPクラスがぴったりです。まずは体験レッスンへ。",
			CtaLabel: "体験レッスンを予約する", CtaURL: "https://example.com/trial/shibuya-kpop",
			Priority: 100, SortOrder: 1,
			Conditions: model.ResultConditions{
				Campus: []string{"shibuya"},
				Genre:  []string{"kpop"},
			},
			IsActive: true,
		},
		{
			SchoolID: schoolID,
			Title:    "はじめてコースで基礎から始めよう",
			Body:     "未経験の方にはマンツーマンに近い少人数のはじめてコースがおすすめです。",
			CtaLabel: "はじめてコースを見る", CtaURL: "https://example.com/courses/starter",
			Priority: 50, SortOrder: 1,
			Conditions: model.ResultConditions{
				CourseSlug: []string{"starter"},
			},
			IsActive: true,
		},
		{
			SchoolID:   schoolID,
			Title:      "あなたに合うクラスをご提案します",
			Body:       "まずは体験レッスンで、スタッフがぴったりのクラスをご案内します。",
			CtaLabel:   "体験レッスンを予約する", CtaURL: "https://example.com/trial",
			Priority:   0, SortOrder: 99,
			IsFallback: true,
			IsActive:   true,
		},
	}
	for _, result := range results {
		if err := resultRepo.Create(ctx, result); err != nil {
			log.Fatalf("Failed to insert result %q: %v", result.Title, err)
		}
	}

	fmt.Printf("Successfully seeded demo data for school %q\n", schoolID)
}
