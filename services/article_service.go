package services

import (
	"errors"

	"github.com/arysespajayadii/dsc-backend-repo/config"
	"github.com/arysespajayadii/dsc-backend-repo/models"
	"github.com/arysespajayadii/dsc-backend-repo/utils"

	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("article not found")

func ListArticles() ([]map[string]interface{}, error) {
	var articles []models.Article
	err := config.DB.Order("created_at desc").Find(&articles).Error
	if err != nil {
		return nil, err
	}

	out := []map[string]interface{}{}
	for _, a := range articles {
		// Truncate on rune boundaries so multibyte content is not cut
		// mid-character.
		snippet := a.Content
		if runes := []rune(snippet); len(runes) > 100 {
			snippet = string(runes[:100]) + "..."
		}
		out = append(out, map[string]interface{}{
			"id":        a.ID,
			"title":     a.Title,
			"snippet":   snippet,
			"image_url": a.ImageURL,
		})
	}
	return out, nil
}

func GetArticleDetail(articleID uint) (map[string]interface{}, error) {
	var article models.Article
	if err := config.DB.First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	html, err := utils.RenderMarkdown(article.Content)
	if err != nil {
		// fall back to the raw markdown rather than failing the request
		html = article.Content
	}

	return map[string]interface{}{
		"id":           article.ID,
		"title":        article.Title,
		"content":      article.Content,
		"content_html": html,
		"created_at":   article.CreatedAt.Format("2006-01-02"),
		"image_url":    article.ImageURL,
		"video_url":    article.VideoURL,
	}, nil
}

type ArticleInput struct {
	Title       string
	Content     string
	VideoURL    string
	ImageBase64 string
}

func CreateArticle(in ArticleInput) (*models.Article, error) {
	article := models.Article{
		Title:    in.Title,
		Content:  in.Content,
		VideoURL: in.VideoURL,
	}
	if in.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(in.ImageBase64, "articles")
		if err != nil {
			return nil, err
		}
		article.ImageURL = url
	}
	if err := config.DB.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func UpdateArticle(articleID uint, in ArticleInput) (*models.Article, error) {
	var article models.Article
	if err := config.DB.First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	article.Title = in.Title
	article.Content = in.Content
	article.VideoURL = in.VideoURL
	if in.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(in.ImageBase64, "articles")
		if err != nil {
			return nil, err
		}
		article.ImageURL = url
	}

	if err := config.DB.Save(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func DeleteArticle(articleID uint) error {
	result := config.DB.Delete(&models.Article{}, articleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// GetHomePage returns the CMS landing content with its markdown rendered.
func GetHomePage() (map[string]interface{}, error) {
	var content models.HomePageContent
	if err := config.DB.First(&content, 1).Error; err != nil {
		return nil, err
	}

	html := ""
	if content.Content != "" {
		rendered, err := utils.RenderMarkdown(content.Content)
		if err == nil {
			html = rendered
		}
	}

	return map[string]interface{}{
		"title":        content.Title,
		"content":      content.Content,
		"content_html": html,
		"image_url":    content.ImageURL,
	}, nil
}

type HomePageInput struct {
	Title       string
	Content     string
	ImageBase64 string
}

func UpdateHomePage(in HomePageInput) error {
	var content models.HomePageContent
	if err := config.DB.Where("id = ?", 1).
		FirstOrCreate(&content, models.HomePageContent{ID: 1}).Error; err != nil {
		return err
	}

	content.Title = in.Title
	content.Content = in.Content
	if in.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(in.ImageBase64, "homepage")
		if err != nil {
			return err
		}
		content.ImageURL = url
	}
	return config.DB.Save(&content).Error
}
