package main

import "time"

type Mode int

const (
	ModeBrowse Mode = iota
	ModeForm
)

type SectionID int

const (
	SectionHero SectionID = iota
	SectionServices
	SectionStats
	SectionTestimonials
	SectionContact
	sectionCount
)

type RegionKind int

const (
	RegionCarousel RegionKind = iota
	RegionCarouselPrev
	RegionCarouselNext
	RegionCarouselDot
	RegionFormField
	RegionFormSubmit
	RegionNavItem
)

const (
	minPageWidth  = 40
	maxBodyWidth  = 78
	chromeRows    = 2 // progress bar + navbar
	revealMargin  = 2 // rows shaved off the viewport bottom before reveal checks
	revealMinSeen = 0.10
	counterArmAt  = 0.50

	frameRate     = 30
	scrollStep    = 2
	scrollEase    = 0.25
	navScrolledAt = 4 // rows of scroll before the navbar condenses

	particleBudget = 26

	defaultTrailFactor     = 0.12
	defaultSwipeThreshold  = 6 // cells a drag must cover to count as a swipe
	defaultAutoAdvance     = 6000 * time.Millisecond
	defaultCounterDuration = 2000 * time.Millisecond
	defaultCounterStagger  = 150 * time.Millisecond

	submitTimeout = 10 * time.Second
	stubLatency   = 1500 * time.Millisecond
)
