package persistence_test

import (
	"context"

	"settings-server/internal/customfields/domain"
	"settings-server/internal/customfields/persistence"
	"settings-server/internal/customfields/usecases"
	"settings-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SimpleGroupRepository", func() {
	var (
		repo        *persistence.SimpleGroupRepository
		definitions *persistence.SimpleDefinitionRepository
		ctx         context.Context
	)

	ginkgo.BeforeEach(func() {
		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = persistence.NewGroupRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		definitions, err = persistence.NewDefinitionRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	ginkgo.Context("Create and GetByID", func() {
		ginkgo.When("creating a new group", func() {
			ginkgo.It("should assign an id and round-trip the record", func() {
				created, err := repo.Create(ctx, domain.FieldGroup{
					EntityType:  "customer",
					Name:        "contact",
					DisplayName: "Contact",
					SortOrder:   10,
					IsActive:    true,
				})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(created.ID).NotTo(gomega.BeZero())

				found, err := repo.GetByID(ctx, created.ID)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(found.Name).To(gomega.Equal("contact"))
				gomega.Expect(found.DisplayName).To(gomega.Equal("Contact"))
			})
		})

		ginkgo.When("creating an archived group", func() {
			ginkgo.It("should keep the inactive flag on the stored row", func() {
				created, err := repo.Create(ctx, domain.FieldGroup{
					EntityType: "customer",
					Name:       "legacy",
					IsActive:   false,
				})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				found, err := repo.GetByID(ctx, created.ID)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(found.IsActive).To(gomega.BeFalse())

				active, err := repo.FindActive(ctx, "customer")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(active).To(gomega.BeEmpty())
			})
		})

		ginkgo.When("the group does not exist", func() {
			ginkgo.It("should return the not-found sentinel", func() {
				_, err := repo.GetByID(ctx, 999)
				gomega.Expect(err).To(gomega.MatchError(usecases.ErrGroupNotFound))
			})
		})
	})

	ginkgo.Context("NameExists", func() {
		var existing domain.FieldGroup

		ginkgo.BeforeEach(func() {
			var err error
			existing, err = repo.Create(ctx, domain.FieldGroup{
				EntityType: "customer",
				Name:       "Contact",
				IsActive:   true,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.When("a group with the same name exists in a different casing", func() {
			ginkgo.It("should report a conflict", func() {
				exists, err := repo.NameExists(ctx, "CUSTOMER", "contact", 0)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(exists).To(gomega.BeTrue())
			})
		})

		ginkgo.When("the only match is the excluded record", func() {
			ginkgo.It("should not report a conflict", func() {
				exists, err := repo.NameExists(ctx, "customer", "contact", existing.ID)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(exists).To(gomega.BeFalse())
			})
		})

		ginkgo.When("the same name belongs to another entity type", func() {
			ginkgo.It("should not report a conflict", func() {
				exists, err := repo.NameExists(ctx, "supplier", "contact", 0)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(exists).To(gomega.BeFalse())
			})
		})
	})

	ginkgo.Context("FindActive", func() {
		ginkgo.BeforeEach(func() {
			seeds := []domain.FieldGroup{
				{EntityType: "customer", Name: "second", SortOrder: 20, IsActive: true},
				{EntityType: "customer", Name: "first", SortOrder: 10, IsActive: true},
				{EntityType: "customer", Name: "archived", SortOrder: 5, IsActive: false},
				{EntityType: "supplier", Name: "other", SortOrder: 1, IsActive: true},
			}
			for _, seed := range seeds {
				_, err := repo.Create(ctx, seed)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			}
		})

		ginkgo.It("should return active groups of the entity type ordered by sort order", func() {
			groups, err := repo.FindActive(ctx, "customer")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(groups).To(gomega.HaveLen(2))
			gomega.Expect(groups[0].Name).To(gomega.Equal("first"))
			gomega.Expect(groups[1].Name).To(gomega.Equal("second"))
		})

		ginkgo.It("should span entity types when no filter is given", func() {
			groups, err := repo.FindActive(ctx, "")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(groups).To(gomega.HaveLen(3))
		})
	})

	ginkgo.Context("UpdateMany", func() {
		ginkgo.It("should persist the whole batch", func() {
			first, err := repo.Create(ctx, domain.FieldGroup{EntityType: "customer", Name: "a", SortOrder: 10, IsActive: true})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			second, err := repo.Create(ctx, domain.FieldGroup{EntityType: "customer", Name: "b", SortOrder: 20, IsActive: true})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			first.SortOrder = 20
			second.SortOrder = 10
			err = repo.UpdateMany(ctx, []domain.FieldGroup{first, second})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			groups, err := repo.FindActive(ctx, "customer")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(groups[0].Name).To(gomega.Equal("b"))
			gomega.Expect(groups[1].Name).To(gomega.Equal("a"))
		})
	})

	ginkgo.Context("HasDefinitions", func() {
		ginkgo.It("should report whether any definition references the group", func() {
			group, err := repo.Create(ctx, domain.FieldGroup{EntityType: "customer", Name: "contact", IsActive: true})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			referenced, err := repo.HasDefinitions(ctx, group.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(referenced).To(gomega.BeFalse())

			groupID := group.ID
			_, err = definitions.Create(ctx, domain.FieldDefinition{
				EntityType: "customer",
				Name:       "phone",
				FieldType:  domain.FieldTypeText,
				GroupID:    &groupID,
				IsActive:   true,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			referenced, err = repo.HasDefinitions(ctx, group.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(referenced).To(gomega.BeTrue())
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the record", func() {
			group, err := repo.Create(ctx, domain.FieldGroup{EntityType: "customer", Name: "contact", IsActive: true})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			err = repo.Delete(ctx, group.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = repo.GetByID(ctx, group.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrGroupNotFound))
		})
	})
})
