package handler

import (
	"errors"
	"time"

	"tour_manager/constants"
	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func tourListQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.Tour{}).
		Where("is_active = ?", true).
		Preload("Division").
		Preload("District").
		Preload("Upazila").
		Preload("Transport").
		Preload("Stay").
		Preload("TourLead.User").
		Order("created_at DESC")
}

func listTours(c *fiber.Ctx, scope func(*gorm.DB) *gorm.DB) error {
	db := database.DB
	claim, _ := helper.GetInfoUserFromToken(c)

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var totalCount int64
	if err := scope(db.Model(&model.Tour{}).Where("is_active = ?", true)).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	query := scope(tourListQuery(db))
	var tours []model.Tour
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).Find(&tours).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	summaries := make([]model.TourSummary, 0, len(tours))
	for _, tour := range tours {
		summaries = append(summaries, helper.BuildTourSummary(db, tour, claim.UserId))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       summaries,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetTours(c *fiber.Ctx) error {
	return listTours(c, func(q *gorm.DB) *gorm.DB { return q })
}

func GetUpcomingTours(c *fiber.Ctx) error {
	return listTours(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("start_datetime > ?", time.Now())
	})
}

func GetPastTours(c *fiber.Ctx) error {
	return listTours(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("start_datetime <= ?", time.Now())
	})
}

func GetTourBySlug(c *fiber.Ctx) error {
	db := database.DB
	claim, _ := helper.GetInfoUserFromToken(c)
	slug := c.Params("slug")

	var tour model.Tour
	err := tourListQuery(db).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_number ASC") }).
		Preload("Days.Activities").
		Preload("Inclusions").
		Where("slug = ?", slug).
		First(&tour).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	summary := helper.BuildTourSummary(db, tour, claim.UserId)

	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}
