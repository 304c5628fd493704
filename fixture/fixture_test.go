package fixture_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/mockumentary/fixture"
	"github.com/toejough/mockumentary/internal/core"
)

func TestLoad_BuildsCyclingMethodsAndProperties(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	file, err := fixture.Load("testdata/clock.yaml")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(file.Path()).To(Equal("testdata/clock.yaml"))
	g.Expect(file.Names()).To(Equal([]string{"Clock", "Store"}))

	descriptors, err := file.Descriptors("Clock")
	g.Expect(err).NotTo(HaveOccurred())

	clock := core.NewFactory(descriptors).MustNew(t)

	g.Expect(clock.Keys()).To(Equal([]string{"Now", "Ready", "Window", "offset", "zone"}))
	g.Expect(clock.Prop("zone")).To(Equal("UTC"))
	g.Expect(clock.Prop("offset")).To(Equal(-2))

	for range 2 {
		g.Expect(clock.Call("Now")).To(Equal(1))
		g.Expect(clock.Call("Now")).To(Equal(2))
		g.Expect(clock.Call("Now")).To(Equal(3))
	}

	g.Expect(clock.Call("Ready")).To(BeTrue())
	g.Expect(clock.Call("Ready")).To(BeTrue())
	g.Expect(clock.Call("Window")).To(Equal([]any{9, 17}))
	g.Expect(clock.Call("Window")).To(Equal([]any{9, 17}))
}

func TestLoad_NestedValues(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	file, err := fixture.Load("testdata/clock.yaml")
	g.Expect(err).NotTo(HaveOccurred())

	descriptors, err := file.Descriptors("Store")
	g.Expect(err).NotTo(HaveOccurred())

	store := core.NewFactory(descriptors).MustNew(t)

	g.Expect(store.Call("Get")).To(Equal(map[string]any{"id": 1, "name": "widget"}))
	g.Expect(store.Call("Get")).To(BeNil())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := fixture.Load("testdata/missing.yaml")
		g.Expect(err).To(MatchError(ContainSubstring("reading fixture")))
	})

	t.Run("empty method list", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := fixture.Load("testdata/empty_method.yaml")
		g.Expect(err).To(MatchError(fixture.ErrEmptyMethod))
		g.Expect(err.Error()).To(HavePrefix("testdata/empty_method.yaml: mock Clock: "))
	})
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		yaml string
		want any
	}{
		{
			"duplicate key",
			"mocks:\n  Clock:\n    properties: {Now: 1}\n    methods: {Now: [1]}\n",
			fixture.ErrDuplicateKey,
		},
		{
			"unknown field",
			"mocks:\n  Clock:\n    fields: {Now: 1}\n",
			ContainSubstring("error unmarshalling yaml"),
		},
		{
			"not yaml",
			"mocks: [\n",
			ContainSubstring("error unmarshalling yaml"),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			_, err := fixture.Parse([]byte(tc.yaml))
			g.Expect(err).To(MatchError(tc.want))
		})
	}
}

func TestFile_Descriptors_UnknownMock(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	file, err := fixture.Parse([]byte("mocks: {}\n"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(file.Path()).To(BeEmpty())

	_, err = file.Descriptors("Clock")
	g.Expect(err).To(MatchError(fixture.ErrUnknownMock))
}

func TestFile_Catalog(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	file, err := fixture.Load("testdata/clock.yaml")
	g.Expect(err).NotTo(HaveOccurred())

	catalog, err := file.Catalog()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(catalog.Names()).To(Equal([]string{"Clock", "Store"}))

	factory, ok := catalog.Lookup("Clock")
	g.Expect(ok).To(BeTrue())
	g.Expect(factory.Name()).To(Equal("Clock"))

	mock := factory.MustNew(t, core.Descriptors{"zone": "CET"})
	g.Expect(mock.Prop("zone")).To(Equal("CET"))
	g.Expect(mock.Call("Now")).To(Equal(1))
}
