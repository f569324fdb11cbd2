package testutil

import "github.com/joshuapare/annoindex/internal/format"

// LegacySingleClass is a version 3 blob with one class a.b.C carrying the
// class annotation a.b.Ann and no field or method annotations.
func LegacySingleClass() []byte {
	return Header(3).
		// class names: a(1) b(2) C(3) Ann(4)
		Packed(4).
		Packed(0).UTF("a").
		Packed(1).UTF("b").
		Packed(2).UTF("C").
		Packed(2).UTF("Ann").
		// strings
		Packed(0).
		// classes
		Packed(1).
		Packed(3, 0).U16(0x0001).U8(0).
		Packed(0).          // interfaces
		Packed(1).          // annotations
		Packed(4, 1).       // a.b.Ann, one target
		U8(uint8(format.LegacyTargetClass)).
		Packed(0). // values
		Bytes()
}

// LegacyMembers is a version 2 blob with two classes. a.b.Bean extends
// a.b.Base, implements a.Api, and carries annotations on a field, a method,
// a method parameter, and the class, with values of every kind.
func LegacyMembers() []byte {
	return Header(2).
		// class names: a(1) b(2) Bean(3) Base(4) Inject(5) Get(6) Named(7)
		// Entity(8) Api(9) String(10)
		Packed(10).
		Packed(0).UTF("a").
		Packed(1).UTF("b").
		Packed(2).UTF("Bean").
		Packed(2).UTF("Base").
		Packed(2).UTF("Inject").
		Packed(2).UTF("Get").
		Packed(2).UTF("Named").
		Packed(2).UTF("Entity").
		Packed(1).UTF("Api").
		Packed(1).UTF("String").
		// strings: id(1) value(2) getId(3) RED(4)
		Packed(4).UTF("id").UTF("value").UTF("getId").UTF("RED").
		Packed(2).
		// a.b.Bean
		Packed(3, 4).U16(0x0021).
		Packed(1, 9).
		Packed(4).
		// @a.b.Inject on field id
		Packed(5, 1).
		U8(uint8(format.LegacyTargetField)).
		Packed(1).U8(0).Packed(10).U16(0x0002).
		Packed(3).
		Packed(2).U8(uint8(format.ValueString)).Packed(1).
		Packed(2).U8(uint8(format.ValueBoolean)).U8(1).
		Packed(2).U8(uint8(format.ValueDouble)).Raw(0, 0, 0, 0, 0, 0, 0xF0, 0x3F).
		// @a.b.Get on getId() and on its parameter
		Packed(6, 2).
		U8(uint8(format.LegacyTargetMethod)).
		Packed(3, 1).U8(0).Packed(10).U8(0).Packed(10).U16(0x0001).
		Packed(2).
		Packed(2).U8(uint8(format.ValueEnum)).U8(0).Packed(9).Packed(4).
		Packed(2).U8(uint8(format.ValueArray)).
		Packed(2).
		Packed(0).U8(uint8(format.ValueInt)).Packed(16384).
		Packed(0).U8(uint8(format.ValueClass)).U8(0).Packed(10).
		U8(uint8(format.LegacyTargetMethodParameter)).
		Packed(3, 0).U8(0).Packed(10).U16(0x0001).Packed(0).
		Packed(0).
		// @a.b.Named on the class with a nested annotation value
		Packed(7, 1).
		U8(uint8(format.LegacyTargetClass)).
		Packed(1).
		Packed(2).U8(uint8(format.ValueNested)).Packed(8).
		Packed(2).
		Packed(2).U8(uint8(format.ValueFloat)).Raw(0x3F, 0x80, 0, 0).
		Packed(2).U8(uint8(format.ValueLong)).Raw(0, 0, 0, 0, 0, 0, 0, 7).
		// @a.b.Entity on the class
		Packed(8, 1).
		U8(uint8(format.LegacyTargetClass)).
		Packed(2).
		Packed(2).U8(uint8(format.ValueByte)).U8(1).
		Packed(2).U8(uint8(format.ValueChar)).Packed('x').
		// a.b.Base
		Packed(4, 0).U16(0x0401).
		Packed(0).
		Packed(0).
		Bytes()
}

// CurrentSharedField is a version 6 blob with two classes, a.b.C and a.b.D,
// that both reference field slot 1 (annotated a.b.Col). a.b.C also references
// method slot 1 (annotated a.b.Get). Both carry the class annotation a.b.Ann.
// Every annotation entry is encoded exactly once; later references reuse it.
func CurrentSharedField() []byte {
	return Header(format.CurrentVersion).
		Packed(0, 0, 0).
		// byte table: id(1) getName(2)
		Packed(2).Sized("id").Sized("getName").
		// strings: a(1) b(2) C(3) D(4) Ann(5) Col(6) Get(7) Base(8)
		Packed(8).UTF("a").UTF("b").UTF("C").UTF("D").
		UTF("Ann").UTF("Col").UTF("Get").UTF("Base").
		// names, depth<<1|inner: a(1) b(2) C(3) D(4) Ann(5) Col(6) Get(7) Base(8)
		Packed(8).
		Packed(0, 1).
		Packed(2, 2).
		Packed(4, 3).
		Packed(4, 4).
		Packed(4, 5).
		Packed(4, 6).
		Packed(4, 7).
		Packed(4, 8).
		// two types, one type list
		Packed(2, 1).
		// type 1: class a.b.Base with a type annotation (ref 1)
		U8(uint8(format.TypeClass)).Packed(8).
		Packed(1).
		Packed(1, 5).U8(uint8(format.TargetEmptyType)).Packed(0, 0).Packed(0).
		// type 2: parameterized a.b.D<Base>, list 1 materialized inline
		U8(uint8(format.TypeParameterized)).Packed(0, 4).
		Packed(1).Packed(1, 1).
		Packed(0).
		// type lists: slot 1 already read
		// methods: getName
		Packed(1).
		Packed(2).Packed(0, 0, 0, 0, 0, 0).
		Packed(2).
		Packed(2, 7).U8(uint8(format.TargetMethod)).
		Packed(1).Packed(0).U8(uint8(format.ValueInt)).Packed(42).
		Packed(3, 6).U8(uint8(format.TargetMethodParameter)).Packed(0).Packed(0).
		// fields: id
		Packed(1).
		Packed(1).Packed(0, 0).
		Packed(1).
		Packed(4, 6).U8(uint8(format.TargetField)).
		Packed(2).
		Packed(1).U8(uint8(format.ValueString)).Packed(1).
		Packed(1).U8(uint8(format.ValueArray)).
		Packed(2).
		Packed(0).U8(uint8(format.ValueLong)).Raw(0, 0, 0, 0, 0, 0, 0, 1).
		Packed(0).U8(uint8(format.ValueNested)).
		Packed(5, 5).U8(uint8(format.TargetNull)).Packed(0).
		// classes
		Packed(2).
		// a.b.C extends Base implements list 1
		Packed(3, 1, 1, 0, 1, 0, 0).U8(0).
		Packed(2).
		Packed(1, 1).
		Packed(1, 1).
		Packed(1).Packed(6, 5).U8(uint8(format.TargetClass)).Packed(0).
		Packed(1).Packed(4).
		// a.b.D, enclosing method present
		Packed(4, 0, 0, 0, 0, 0, 0).U8(format.HasEnclosingMethod).Packed(1, 2, 3, 4).
		Packed(1).
		Packed(1, 1).
		Packed(0).
		Packed(2).Packed(6, 4).
		Bytes()
}

// CurrentAllTypeKinds is a version 6 blob whose type table holds one entry of
// every type kind. Type list 1 is materialized inline by a type variable and
// reused by a parameterized type; lists 2 and 3 are left for the trailing
// list section. a.b.Impl extends a.b.Base<...> and implements list 2 (Api,
// a primitive, Base<...>). Annotation values include the version 6 class and
// enum encodings.
func CurrentAllTypeKinds() []byte {
	return Header(format.CurrentVersion).
		Packed(0, 0, 0).
		// byte table: run(1)
		Packed(1).Sized("run").
		// strings: a(1) b(2) Base(3) Api(4) Impl(5) Ann(6) Kind(7) T(8)
		Packed(8).UTF("a").UTF("b").UTF("Base").UTF("Api").
		UTF("Impl").UTF("Ann").UTF("Kind").UTF("T").
		// names: a(1) b(2) Base(3) Api(4) Impl(5) Ann(6) Kind(7)
		Packed(7).
		Packed(0, 1).
		Packed(2, 2).
		Packed(4, 3).
		Packed(4, 4).
		Packed(4, 5).
		Packed(4, 6).
		Packed(4, 7).
		// nine types, three type lists
		Packed(9, 3).
		// 1: class a.b.Base
		U8(uint8(format.TypeClass)).Packed(3).Packed(0).
		// 2: class a.b.Api
		U8(uint8(format.TypeClass)).Packed(4).Packed(0).
		// 3: Base[], one dimension
		U8(uint8(format.TypeArray)).Packed(1, 1).Packed(0).
		// 4: int
		U8(uint8(format.TypePrimitive)).U8('I').Packed(0).
		// 5: void
		U8(uint8(format.TypeVoid)).Packed(0).
		// 6: T extends Api, list 1 materialized inline
		U8(uint8(format.TypeVariable)).Packed(8).
		Packed(1).Packed(1, 2).
		Packed(0).
		// 7: unresolved T
		U8(uint8(format.TypeUnresolvedVariable)).Packed(8).Packed(0).
		// 8: ? extends Api
		U8(uint8(format.TypeWildcard)).Packed(1, 2).Packed(0).
		// 9: a.b.Base<list 1>, annotated with class and enum values
		U8(uint8(format.TypeParameterized)).Packed(0, 3).
		Packed(1).
		Packed(1).
		Packed(1, 6).U8(uint8(format.TargetClassExtendsType)).Packed(0, 0).
		Packed(2).
		Packed(7).U8(uint8(format.ValueClass)).Packed(2).
		Packed(7).U8(uint8(format.ValueEnum)).Packed(4, 7).
		// type lists 2 and 3
		Packed(3).Packed(2, 4, 9).
		Packed(0).
		// methods: run
		Packed(1).
		Packed(1).Packed(0, 0, 0, 0, 0, 0).
		Packed(0).
		// fields
		Packed(0).
		// classes
		Packed(2).
		// a.b.Impl extends type 9 implements list 2
		Packed(5, 1, 9, 0, 2, 0, 0).U8(0).
		Packed(1).
		Packed(0).
		Packed(1, 1).
		Packed(1).
		Packed(2, 6).U8(uint8(format.TargetClass)).
		Packed(1).Packed(7).U8(uint8(format.ValueEnum)).Packed(4, 7).
		// a.b.Base implements the empty list 3
		Packed(3, 0x0401, 0, 0, 3, 0, 0).U8(0).
		Packed(0).
		Packed(0).
		Packed(0).
		Bytes()
}
