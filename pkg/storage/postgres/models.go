package postgres

import (
	"catconnect/pkg/domain"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i int) sql.NullInt32 {
	return sql.NullInt32{Int32: int32(i), Valid: i != 0} //nolint: gosec
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

type PgUser struct {
	ID           uuid.UUID      `db:"id"            goqu:"skipinsert"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	Phone        sql.NullString `db:"phone"`
	Municipality sql.NullString `db:"municipality"`

	EmailVerified bool `db:"email_verified"`
	PhoneVerified bool `db:"phone_verified"`
	Active        bool `db:"is_active"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:            domain.UserID(p.ID),
		Email:         p.Email,
		PasswordHash:  p.PasswordHash,
		Name:          p.Name,
		Role:          domain.Role(p.Role),
		Phone:         p.Phone.String,
		Municipality:  p.Municipality.String,
		EmailVerified: p.EmailVerified,
		PhoneVerified: p.PhoneVerified,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:            uuid.UUID(u.ID),
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Name:          u.Name,
		Role:          string(u.Role),
		Phone:         nullString(u.Phone),
		Municipality:  nullString(u.Municipality),
		EmailVerified: u.EmailVerified,
		PhoneVerified: u.PhoneVerified,
		Active:        u.Active,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     nullTime(u.UpdatedAt),
	}
}

type PgBusiness struct {
	ID           uuid.UUID      `db:"id"            goqu:"skipinsert"`
	OwnerID      uuid.UUID      `db:"owner_id"`
	Name         string         `db:"name"`
	Category     string         `db:"category"`
	Description  string         `db:"description"`
	PermitNumber string         `db:"permit_number"`
	Address      string         `db:"address"`
	Municipality string         `db:"municipality"`
	Phone        sql.NullString `db:"phone"`
	Email        sql.NullString `db:"email"`
	Website      sql.NullString `db:"website"`

	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`

	Status           string         `db:"status"`
	ModerationReason sql.NullString `db:"moderation_reason"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgBusiness) ToDomain() *domain.Business {
	b := &domain.Business{
		ID:               domain.BusinessID(p.ID),
		OwnerID:          domain.UserID(p.OwnerID),
		Name:             p.Name,
		Category:         p.Category,
		Description:      p.Description,
		PermitNumber:     p.PermitNumber,
		Address:          p.Address,
		Municipality:     p.Municipality,
		Phone:            p.Phone.String,
		Email:            p.Email.String,
		Website:          p.Website.String,
		Status:           domain.BusinessStatus(p.Status),
		ModerationReason: p.ModerationReason.String,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		DeletedAt:        p.DeletedAt.Time,
	}
	if p.Latitude.Valid && p.Longitude.Valid {
		b.Location = &domain.Coordinates{Latitude: p.Latitude.Float64, Longitude: p.Longitude.Float64}
	}

	return b
}

func (p *PgBusiness) FromDomain(b domain.Business) {
	*p = PgBusiness{
		ID:               uuid.UUID(b.ID),
		OwnerID:          uuid.UUID(b.OwnerID),
		Name:             b.Name,
		Category:         b.Category,
		Description:      b.Description,
		PermitNumber:     b.PermitNumber,
		Address:          b.Address,
		Municipality:     b.Municipality,
		Phone:            nullString(b.Phone),
		Email:            nullString(b.Email),
		Website:          nullString(b.Website),
		Status:           string(b.Status),
		ModerationReason: nullString(b.ModerationReason),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        nullTime(b.UpdatedAt),
		DeletedAt:        nullTime(b.DeletedAt),
	}
	if b.Location != nil {
		p.Latitude = sql.NullFloat64{Float64: b.Location.Latitude, Valid: true}
		p.Longitude = sql.NullFloat64{Float64: b.Location.Longitude, Valid: true}
	}
}

type PgJob struct {
	ID           uuid.UUID     `db:"id"           goqu:"skipinsert"`
	BusinessID   uuid.UUID     `db:"business_id"`
	PostedBy     uuid.UUID     `db:"posted_by"`
	Title        string        `db:"title"`
	Description  string        `db:"description"`
	Requirements string        `db:"requirements"`
	Type         string        `db:"job_type"`
	SalaryMin    sql.NullInt32 `db:"salary_min"`
	SalaryMax    sql.NullInt32 `db:"salary_max"`
	Municipality string        `db:"municipality"`
	Active       bool          `db:"is_active"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgJob) ToDomain() *domain.Job {
	return &domain.Job{
		ID:           domain.JobID(p.ID),
		BusinessID:   domain.BusinessID(p.BusinessID),
		PostedBy:     domain.UserID(p.PostedBy),
		Title:        p.Title,
		Description:  p.Description,
		Requirements: p.Requirements,
		Type:         domain.JobType(p.Type),
		SalaryMin:    int(p.SalaryMin.Int32),
		SalaryMax:    int(p.SalaryMax.Int32),
		Municipality: p.Municipality,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
		DeletedAt:    p.DeletedAt.Time,
	}
}

func (p *PgJob) FromDomain(j domain.Job) {
	*p = PgJob{
		ID:           uuid.UUID(j.ID),
		BusinessID:   uuid.UUID(j.BusinessID),
		PostedBy:     uuid.UUID(j.PostedBy),
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Type:         string(j.Type),
		SalaryMin:    nullInt(j.SalaryMin),
		SalaryMax:    nullInt(j.SalaryMax),
		Municipality: j.Municipality,
		Active:       j.Active,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    nullTime(j.UpdatedAt),
		DeletedAt:    nullTime(j.DeletedAt),
	}
}

type PgService struct {
	ID           uuid.UUID      `db:"id"           goqu:"skipinsert"`
	ProviderID   uuid.UUID      `db:"provider_id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	Category     string         `db:"category"`
	Rate         sql.NullInt32  `db:"rate"`
	RateUnit     sql.NullString `db:"rate_unit"`
	Municipality string         `db:"municipality"`
	Active       bool           `db:"is_active"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgService) ToDomain() *domain.Service {
	return &domain.Service{
		ID:           domain.ServiceID(p.ID),
		ProviderID:   domain.UserID(p.ProviderID),
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Rate:         int(p.Rate.Int32),
		RateUnit:     p.RateUnit.String,
		Municipality: p.Municipality,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
		DeletedAt:    p.DeletedAt.Time,
	}
}

func (p *PgService) FromDomain(s domain.Service) {
	*p = PgService{
		ID:           uuid.UUID(s.ID),
		ProviderID:   uuid.UUID(s.ProviderID),
		Title:        s.Title,
		Description:  s.Description,
		Category:     s.Category,
		Rate:         nullInt(s.Rate),
		RateUnit:     nullString(s.RateUnit),
		Municipality: s.Municipality,
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    nullTime(s.UpdatedAt),
		DeletedAt:    nullTime(s.DeletedAt),
	}
}

type PgReview struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	BusinessID uuid.UUID `db:"business_id"`
	UserID     uuid.UUID `db:"user_id"`
	Rating     int16     `db:"rating"`
	Comment    string    `db:"comment"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgReview) ToDomain() *domain.Review {
	return &domain.Review{
		ID:         domain.ReviewID(p.ID),
		BusinessID: domain.BusinessID(p.BusinessID),
		UserID:     domain.UserID(p.UserID),
		Rating:     int(p.Rating),
		Comment:    p.Comment,
		CreatedAt:  p.CreatedAt,
		DeletedAt:  p.DeletedAt.Time,
	}
}

func (p *PgReview) FromDomain(r domain.Review) {
	*p = PgReview{
		ID:         uuid.UUID(r.ID),
		BusinessID: uuid.UUID(r.BusinessID),
		UserID:     uuid.UUID(r.UserID),
		Rating:     int16(r.Rating), //nolint: gosec
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		DeletedAt:  nullTime(r.DeletedAt),
	}
}

type PgApplication struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	JobID       uuid.UUID `db:"job_id"`
	ApplicantID uuid.UUID `db:"applicant_id"`
	CoverLetter string    `db:"cover_letter"`
	ResumeText  string    `db:"resume_text"`
	Status      string    `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() *domain.JobApplication {
	return &domain.JobApplication{
		ID:          domain.ApplicationID(p.ID),
		JobID:       domain.JobID(p.JobID),
		ApplicantID: domain.UserID(p.ApplicantID),
		CoverLetter: p.CoverLetter,
		ResumeText:  p.ResumeText,
		Status:      domain.ApplicationStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgApplication) FromDomain(a domain.JobApplication) {
	*p = PgApplication{
		ID:          uuid.UUID(a.ID),
		JobID:       uuid.UUID(a.JobID),
		ApplicantID: uuid.UUID(a.ApplicantID),
		CoverLetter: a.CoverLetter,
		ResumeText:  a.ResumeText,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   nullTime(a.UpdatedAt),
	}
}

type PgNotification struct {
	ID      uuid.UUID      `db:"id"      goqu:"skipinsert"`
	UserID  uuid.UUID      `db:"user_id"`
	Type    string         `db:"type"`
	Title   string         `db:"title"`
	Message string         `db:"message"`
	Link    sql.NullString `db:"link"`
	Read    bool           `db:"is_read"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgNotification) ToDomain() *domain.Notification {
	return &domain.Notification{
		ID:        domain.NotificationID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Type:      domain.NotificationType(p.Type),
		Title:     p.Title,
		Message:   p.Message,
		Link:      p.Link.String,
		Read:      p.Read,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgNotification) FromDomain(n domain.Notification) {
	*p = PgNotification{
		ID:        uuid.UUID(n.ID),
		UserID:    uuid.UUID(n.UserID),
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      nullString(n.Link),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
