package node

import "strconv"

// Kind identifies the semantic role of a node in the Swift demangling AST.
type Kind uint16

const (
	KindUnknown Kind = iota
	KindAllocator
	KindAccessibleFunctionRecord
	KindAccessorFunctionReference
	KindAccessorAttachedMacroExpansion
	KindAnonymousContext
	KindAnonymousDescriptor
	KindAnyProtocolConformanceList
	KindArgumentTuple
	KindAssociatedConformanceDescriptor
	KindAssociatedType
	KindAssociatedTypeDescriptor
	KindAssociatedTypeGenericParamRef
	KindAssociatedTypeMetadataAccessor
	KindAssociatedTypeRef
	KindAssociatedTypeWitnessTableAccessor
	KindAssocTypePath
	KindAsyncAnnotation
	KindAsyncAwaitResumePartialFunction
	KindAsyncFunctionPointer
	KindAsyncRemoved
	KindAsyncSuspendResumePartialFunction
	KindAutoClosureType
	KindAutoDiffDerivativeVTableThunk
	KindAutoDiffFunction
	KindAutoDiffFunctionKind
	KindAutoDiffSelfReorderingReabstractionThunk
	KindAutoDiffSubsetParametersThunk
	KindBackDeploymentThunk
	KindBackDeploymentFallback
	KindBaseConformanceDescriptor
	KindBaseWitnessTableAccessor
	KindBodyAttachedMacroExpansion
	KindBoundGenericClass
	KindBoundGenericEnum
	KindBoundGenericFunction
	KindBoundGenericOtherNominalType
	KindBoundGenericProtocol
	KindBoundGenericStructure
	KindBoundGenericTypeAlias
	KindBuiltinTypeName
	KindBuiltinTupleType
	KindBuiltinFixedArray
	KindCanonicalPrespecializedGenericTypeCachingOnceToken
	KindCanonicalSpecializedGenericMetaclass
	KindCanonicalSpecializedGenericTypeMetadataAccessFunction
	KindCFunctionPointer
	KindClangType
	KindClass
	KindClassMetadataBaseOffset
	KindCompileTimeConst
	KindConcreteProtocolConformance
	KindConcurrentFunctionType
	KindConformanceAttachedMacroExpansion
	KindConstrainedExistential
	KindConstrainedExistentialRequirementList
	KindConstrainedExistentialSelf
	KindConstructor
	KindCoroutineContinuationPrototype
	KindCurryThunk
	KindDeallocator
	KindDeclContext
	KindDefaultArgumentInitializer
	KindDefaultAssociatedConformanceAccessor
	KindDefaultAssociatedTypeMetadataAccessor
	KindDependentAssociatedConformance
	KindDependentAssociatedTypeRef
	KindDependentGenericConformanceRequirement
	KindDependentGenericInverseConformanceRequirement
	KindDependentGenericLayoutRequirement
	KindDependentGenericParamCount
	KindDependentGenericParamPackMarker
	KindDependentGenericParamValueMarker
	KindDependentGenericParamType
	KindDependentGenericSameShapeRequirement
	KindDependentGenericSameTypeRequirement
	KindDependentGenericSignature
	KindDependentGenericType
	KindDependentMemberType
	KindDependentProtocolConformanceAssociated
	KindDependentProtocolConformanceInherited
	KindDependentProtocolConformanceRoot
	KindDependentPseudogenericSignature
	KindDestructor
	KindDidSet
	KindDifferentiabilityWitness
	KindDifferentiableFunctionType
	KindDirectMethodReferenceAttribute
	KindDirectness
	KindDispatchThunk
	KindDistributedAccessor
	KindDistributedThunk
	KindDroppedArgument
	KindDynamicallyReplaceableFunctionImpl
	KindDynamicallyReplaceableFunctionKey
	KindDynamicallyReplaceableFunctionVar
	KindDynamicAttribute
	KindDynamicSelf
	KindEmptyList
	KindEnum
	KindEnumCase
	KindErrorType
	KindEscapingAutoClosureType
	KindEscapingObjCBlock
	KindExistentialMetatype
	KindExtension
	KindExplicitClosure
	KindExtendedExistentialTypeShape
	KindExtensionAttachedMacroExpansion
	KindExtensionDescriptor
	KindFieldOffset
	KindFirstElementMarker
	KindFreestandingMacroExpansion
	KindFullObjCResilientClassStub
	KindFullTypeMetadata
	KindFunction
	KindFunctionSignatureSpecialization
	KindFunctionSignatureSpecializationParam
	KindFunctionSignatureSpecializationReturn
	KindFunctionSignatureSpecializationParamKind
	KindFunctionSignatureSpecializationParamPayload
	KindFunctionType
	KindGenericPartialSpecialization
	KindGenericPartialSpecializationNotReAbstracted
	KindGenericProtocolWitnessTable
	KindGenericProtocolWitnessTableInstantiationFunction
	KindGenericSpecialization
	KindGenericSpecializationInResilienceDomain
	KindGenericSpecializationPrespecialized
	KindGenericSpecializationNotReAbstracted
	KindGenericSpecializationParam
	KindGenericTypeMetadataPattern
	KindGenericTypeParamDecl
	KindGetter
	KindGlobal
	KindGlobalActorFunctionType
	KindGlobalGetter
	KindGlobalVariableOnceDeclList
	KindGlobalVariableOnceToken
	KindGlobalVariableOnceFunction
	KindHasSymbolQuery
	KindIdentifier
	KindImplConvention
	KindImplDifferentiabilityKind
	KindImplErrorResult
	KindImplEscaping
	KindImplErasedIsolation
	KindImplSendingResult
	KindImplParameterResultDifferentiability
	KindImplParameterSending
	KindImplFunctionAttribute
	KindImplFunctionConvention
	KindImplFunctionConventionName
	KindImplFunctionType
	KindImplCoroutineKind
	KindImplicitClosure
	KindImplInvocationSubstitutions
	KindImplParameter
	KindImplPatternSubstitutions
	KindImplResult
	KindImplYield
	KindIndex
	KindIndexSubset
	KindInfixOperator
	KindInitAccessor
	KindInitializer
	KindInlinedGenericFunction
	KindInOut
	KindInteger
	KindIsolated
	KindIsolatedDeallocator
	KindIsolatedAnyFunctionType
	KindNonIsolatedCallerFunctionType
	KindIsSerialized
	KindIVarDestroyer
	KindIVarInitializer
	KindKeyPathEqualsThunkHelper
	KindKeyPathGetterThunkHelper
	KindKeyPathHashThunkHelper
	KindKeyPathSetterThunkHelper
	KindKeyPathAppliedMethodThunkHelper
	KindKeyPathUnappliedMethodThunkHelper
	KindLabelList
	KindLazyProtocolWitnessTableAccessor
	KindLazyProtocolWitnessTableCacheVariable
	KindLocalDeclName
	KindMacro
	KindMacroExpansionLoc
	KindMacroExpansionUniqueName
	KindMaterializeForSet
	KindMemberAttachedMacroExpansion
	KindMemberAttributeAttachedMacroExpansion
	KindMergedFunction
	KindMetaclass
	KindMetadataInstantiationCache
	KindMetatype
	KindMetatypeRepresentation
	KindMethodDescriptor
	KindMethodLookupFunction
	KindModifyAccessor
	KindModule
	KindModuleDescriptor
	KindNativeOwningAddressor
	KindNativeOwningMutableAddressor
	KindNativePinningAddressor
	KindNativePinningMutableAddressor
	KindNegativeInteger
	KindNoDerivative
	KindNoEscapeFunctionType
	KindNominalTypeDescriptor
	KindNominalTypeDescriptorRecord
	KindNoncanonicalSpecializedGenericTypeMetadata
	KindNoncanonicalSpecializedGenericTypeMetadataCache
	KindNonObjCAttribute
	KindNonUniqueExtendedExistentialTypeShapeSymbolicReference
	KindNumber
	KindObjCAttribute
	KindObjCAsyncCompletionHandlerImpl
	KindObjCBlock
	KindObjCMetadataUpdateFunction
	KindObjCResilientClassStub
	KindObjectiveCProtocolSymbolicReference
	KindOpaqueReturnType
	KindOpaqueReturnTypeIndex
	KindOpaqueReturnTypeOf
	KindOpaqueReturnTypeParent
	KindOpaqueType
	KindOpaqueTypeDescriptor
	KindOpaqueTypeDescriptorAccessor
	KindOpaqueTypeDescriptorAccessorImpl
	KindOpaqueTypeDescriptorAccessorKey
	KindOpaqueTypeDescriptorAccessorVar
	KindOpaqueTypeDescriptorRecord
	KindOpaqueTypeDescriptorSymbolicReference
	KindOtherNominalType
	KindOutlinedAssignWithCopy
	KindOutlinedAssignWithCopyNoValueWitness
	KindOutlinedAssignWithTake
	KindOutlinedAssignWithTakeNoValueWitness
	KindOutlinedBridgedMethod
	KindOutlinedConsume
	KindOutlinedCopy
	KindOutlinedDestroy
	KindOutlinedDestroyNoValueWitness
	KindOutlinedEnumGetTag
	KindOutlinedEnumProjectDataForLoad
	KindOutlinedEnumTagStore
	KindOutlinedInitializeWithCopy
	KindOutlinedInitializeWithCopyNoValueWitness
	KindOutlinedInitializeWithTake
	KindOutlinedRelease
	KindOutlinedRetain
	KindOutlinedVariable
	KindOutlinedReadOnlyObject
	KindOwned
	KindOwningAddressor
	KindOwningMutableAddressor
	KindPack
	KindPackElement
	KindPackElementLevel
	KindPackExpansion
	KindPackProtocolConformance
	KindPartialApplyForwarder
	KindPartialApplyObjCForwarder
	KindPeerAttachedMacroExpansion
	KindPostfixOperator
	KindPrefixOperator
	KindPredefinedObjCAsyncCompletionHandlerImpl
	KindPrivateDeclName
	KindPropertyDescriptor
	KindPropertyWrapperBackingInitializer
	KindPropertyWrapperInitFromProjectedValue
	KindProtocol
	KindProtocolConformance
	KindProtocolConformanceDescriptorRecord
	KindProtocolConformanceRefInTypeModule
	KindProtocolConformanceRefInProtocolModule
	KindProtocolConformanceRefInOtherModule
	KindProtocolConformanceDescriptor
	KindProtocolDescriptor
	KindProtocolDescriptorRecord
	KindProtocolList
	KindProtocolListWithAnyObject
	KindProtocolListWithClass
	KindProtocolRequirementsBaseDescriptor
	KindProtocolSelfConformanceDescriptor
	KindProtocolSelfConformanceWitness
	KindProtocolSelfConformanceWitnessTable
	KindProtocolSymbolicReference
	KindProtocolWitness
	KindProtocolWitnessTable
	KindProtocolWitnessTableAccessor
	KindProtocolWitnessTablePattern
	KindReabstractionThunk
	KindReabstractionThunkHelper
	KindReabstractionThunkHelperWithGlobalActor
	KindReabstractionThunkHelperWithSelf
	KindReadAccessor
	KindReflectionMetadataAssocTypeDescriptor
	KindReflectionMetadataBuiltinDescriptor
	KindReflectionMetadataFieldDescriptor
	KindReflectionMetadataSuperclassDescriptor
	KindRelatedEntityDeclName
	KindResilientProtocolWitnessTable
	KindRetroactiveConformance
	KindReturnType
	KindSending
	KindSendingResultFunctionType
	KindSetter
	KindShared
	KindSilBoxImmutableField
	KindSilBoxLayout
	KindSilBoxMutableField
	KindSilBoxType
	KindSilBoxTypeWithLayout
	KindSilPackDirect
	KindSilPackIndirect
	KindSilThunkIdentity
	KindSilThunkHopToMainActorIfNeeded
	KindSpecializationPassID
	KindStatic
	KindStructure
	KindSubscript
	KindSuffix
	KindSugaredOptional
	KindSugaredArray
	KindSugaredDictionary
	KindSugaredParen
	KindSymbolicExtendedExistentialType
	KindTypeSymbolicReference
	KindThinFunctionType
	KindThrowsAnnotation
	KindTuple
	KindTupleElement
	KindTupleElementName
	KindType
	KindTypeAlias
	KindTypedThrowsAnnotation
	KindTypeList
	KindTypeMangling
	KindTypeMetadata
	KindTypeMetadataAccessFunction
	KindTypeMetadataCompletionFunction
	KindTypeMetadataDemanglingCache
	KindTypeMetadataInstantiationCache
	KindTypeMetadataInstantiationFunction
	KindTypeMetadataLazyCache
	KindTypeMetadataSingletonInitializationCache
	KindUncurriedFunctionType
	KindUniquable
	KindUniqueExtendedExistentialTypeShapeSymbolicReference
	KindUnknownIndex
	KindUnmanaged
	KindUnowned
	KindUnsafeAddressor
	KindUnsafeMutableAddressor
	KindValueWitness
	KindValueWitnessTable
	KindVariable
	KindVariadicMarker
	KindVTableThunk
	KindWeak
	KindWillSet

	numKinds
)

var kindNames = [numKinds]string{
	KindUnknown:                                                "unknown",
	KindAllocator:                                              "allocator",
	KindAccessibleFunctionRecord:                               "accessibleFunctionRecord",
	KindAccessorFunctionReference:                              "accessorFunctionReference",
	KindAccessorAttachedMacroExpansion:                         "accessorAttachedMacroExpansion",
	KindAnonymousContext:                                       "anonymousContext",
	KindAnonymousDescriptor:                                    "anonymousDescriptor",
	KindAnyProtocolConformanceList:                             "anyProtocolConformanceList",
	KindArgumentTuple:                                          "argumentTuple",
	KindAssociatedConformanceDescriptor:                        "associatedConformanceDescriptor",
	KindAssociatedType:                                         "associatedType",
	KindAssociatedTypeDescriptor:                               "associatedTypeDescriptor",
	KindAssociatedTypeGenericParamRef:                          "associatedTypeGenericParamRef",
	KindAssociatedTypeMetadataAccessor:                         "associatedTypeMetadataAccessor",
	KindAssociatedTypeRef:                                      "associatedTypeRef",
	KindAssociatedTypeWitnessTableAccessor:                     "associatedTypeWitnessTableAccessor",
	KindAssocTypePath:                                          "assocTypePath",
	KindAsyncAnnotation:                                        "asyncAnnotation",
	KindAsyncAwaitResumePartialFunction:                        "asyncAwaitResumePartialFunction",
	KindAsyncFunctionPointer:                                   "asyncFunctionPointer",
	KindAsyncRemoved:                                           "asyncRemoved",
	KindAsyncSuspendResumePartialFunction:                      "asyncSuspendResumePartialFunction",
	KindAutoClosureType:                                        "autoClosureType",
	KindAutoDiffDerivativeVTableThunk:                          "autoDiffDerivativeVTableThunk",
	KindAutoDiffFunction:                                       "autoDiffFunction",
	KindAutoDiffFunctionKind:                                   "autoDiffFunctionKind",
	KindAutoDiffSelfReorderingReabstractionThunk:               "autoDiffSelfReorderingReabstractionThunk",
	KindAutoDiffSubsetParametersThunk:                          "autoDiffSubsetParametersThunk",
	KindBackDeploymentThunk:                                    "backDeploymentThunk",
	KindBackDeploymentFallback:                                 "backDeploymentFallback",
	KindBaseConformanceDescriptor:                              "baseConformanceDescriptor",
	KindBaseWitnessTableAccessor:                               "baseWitnessTableAccessor",
	KindBodyAttachedMacroExpansion:                             "bodyAttachedMacroExpansion",
	KindBoundGenericClass:                                      "boundGenericClass",
	KindBoundGenericEnum:                                       "boundGenericEnum",
	KindBoundGenericFunction:                                   "boundGenericFunction",
	KindBoundGenericOtherNominalType:                           "boundGenericOtherNominalType",
	KindBoundGenericProtocol:                                   "boundGenericProtocol",
	KindBoundGenericStructure:                                  "boundGenericStructure",
	KindBoundGenericTypeAlias:                                  "boundGenericTypeAlias",
	KindBuiltinTypeName:                                        "builtinTypeName",
	KindBuiltinTupleType:                                       "builtinTupleType",
	KindBuiltinFixedArray:                                      "builtinFixedArray",
	KindCanonicalPrespecializedGenericTypeCachingOnceToken:     "canonicalPrespecializedGenericTypeCachingOnceToken",
	KindCanonicalSpecializedGenericMetaclass:                   "canonicalSpecializedGenericMetaclass",
	KindCanonicalSpecializedGenericTypeMetadataAccessFunction:  "canonicalSpecializedGenericTypeMetadataAccessFunction",
	KindCFunctionPointer:                                       "cFunctionPointer",
	KindClangType:                                              "clangType",
	KindClass:                                                  "class",
	KindClassMetadataBaseOffset:                                "classMetadataBaseOffset",
	KindCompileTimeConst:                                       "compileTimeConst",
	KindConcreteProtocolConformance:                            "concreteProtocolConformance",
	KindConcurrentFunctionType:                                 "concurrentFunctionType",
	KindConformanceAttachedMacroExpansion:                      "conformanceAttachedMacroExpansion",
	KindConstrainedExistential:                                 "constrainedExistential",
	KindConstrainedExistentialRequirementList:                  "constrainedExistentialRequirementList",
	KindConstrainedExistentialSelf:                             "constrainedExistentialSelf",
	KindConstructor:                                            "constructor",
	KindCoroutineContinuationPrototype:                         "coroutineContinuationPrototype",
	KindCurryThunk:                                             "curryThunk",
	KindDeallocator:                                            "deallocator",
	KindDeclContext:                                            "declContext",
	KindDefaultArgumentInitializer:                             "defaultArgumentInitializer",
	KindDefaultAssociatedConformanceAccessor:                   "defaultAssociatedConformanceAccessor",
	KindDefaultAssociatedTypeMetadataAccessor:                  "defaultAssociatedTypeMetadataAccessor",
	KindDependentAssociatedConformance:                         "dependentAssociatedConformance",
	KindDependentAssociatedTypeRef:                             "dependentAssociatedTypeRef",
	KindDependentGenericConformanceRequirement:                 "dependentGenericConformanceRequirement",
	KindDependentGenericInverseConformanceRequirement:          "dependentGenericInverseConformanceRequirement",
	KindDependentGenericLayoutRequirement:                      "dependentGenericLayoutRequirement",
	KindDependentGenericParamCount:                             "dependentGenericParamCount",
	KindDependentGenericParamPackMarker:                        "dependentGenericParamPackMarker",
	KindDependentGenericParamValueMarker:                       "dependentGenericParamValueMarker",
	KindDependentGenericParamType:                              "dependentGenericParamType",
	KindDependentGenericSameShapeRequirement:                   "dependentGenericSameShapeRequirement",
	KindDependentGenericSameTypeRequirement:                    "dependentGenericSameTypeRequirement",
	KindDependentGenericSignature:                              "dependentGenericSignature",
	KindDependentGenericType:                                   "dependentGenericType",
	KindDependentMemberType:                                    "dependentMemberType",
	KindDependentProtocolConformanceAssociated:                 "dependentProtocolConformanceAssociated",
	KindDependentProtocolConformanceInherited:                  "dependentProtocolConformanceInherited",
	KindDependentProtocolConformanceRoot:                       "dependentProtocolConformanceRoot",
	KindDependentPseudogenericSignature:                        "dependentPseudogenericSignature",
	KindDestructor:                                             "destructor",
	KindDidSet:                                                 "didSet",
	KindDifferentiabilityWitness:                               "differentiabilityWitness",
	KindDifferentiableFunctionType:                             "differentiableFunctionType",
	KindDirectMethodReferenceAttribute:                         "directMethodReferenceAttribute",
	KindDirectness:                                             "directness",
	KindDispatchThunk:                                          "dispatchThunk",
	KindDistributedAccessor:                                    "distributedAccessor",
	KindDistributedThunk:                                       "distributedThunk",
	KindDroppedArgument:                                        "droppedArgument",
	KindDynamicallyReplaceableFunctionImpl:                     "dynamicallyReplaceableFunctionImpl",
	KindDynamicallyReplaceableFunctionKey:                      "dynamicallyReplaceableFunctionKey",
	KindDynamicallyReplaceableFunctionVar:                      "dynamicallyReplaceableFunctionVar",
	KindDynamicAttribute:                                       "dynamicAttribute",
	KindDynamicSelf:                                            "dynamicSelf",
	KindEmptyList:                                              "emptyList",
	KindEnum:                                                   "enum",
	KindEnumCase:                                               "enumCase",
	KindErrorType:                                              "errorType",
	KindEscapingAutoClosureType:                                "escapingAutoClosureType",
	KindEscapingObjCBlock:                                      "escapingObjCBlock",
	KindExistentialMetatype:                                    "existentialMetatype",
	KindExtension:                                              "extension",
	KindExplicitClosure:                                        "explicitClosure",
	KindExtendedExistentialTypeShape:                           "extendedExistentialTypeShape",
	KindExtensionAttachedMacroExpansion:                        "extensionAttachedMacroExpansion",
	KindExtensionDescriptor:                                    "extensionDescriptor",
	KindFieldOffset:                                            "fieldOffset",
	KindFirstElementMarker:                                     "firstElementMarker",
	KindFreestandingMacroExpansion:                             "freestandingMacroExpansion",
	KindFullObjCResilientClassStub:                             "fullObjCResilientClassStub",
	KindFullTypeMetadata:                                       "fullTypeMetadata",
	KindFunction:                                               "function",
	KindFunctionSignatureSpecialization:                        "functionSignatureSpecialization",
	KindFunctionSignatureSpecializationParam:                   "functionSignatureSpecializationParam",
	KindFunctionSignatureSpecializationReturn:                  "functionSignatureSpecializationReturn",
	KindFunctionSignatureSpecializationParamKind:               "functionSignatureSpecializationParamKind",
	KindFunctionSignatureSpecializationParamPayload:            "functionSignatureSpecializationParamPayload",
	KindFunctionType:                                           "functionType",
	KindGenericPartialSpecialization:                           "genericPartialSpecialization",
	KindGenericPartialSpecializationNotReAbstracted:            "genericPartialSpecializationNotReAbstracted",
	KindGenericProtocolWitnessTable:                            "genericProtocolWitnessTable",
	KindGenericProtocolWitnessTableInstantiationFunction:       "genericProtocolWitnessTableInstantiationFunction",
	KindGenericSpecialization:                                  "genericSpecialization",
	KindGenericSpecializationInResilienceDomain:                "genericSpecializationInResilienceDomain",
	KindGenericSpecializationPrespecialized:                    "genericSpecializationPrespecialized",
	KindGenericSpecializationNotReAbstracted:                   "genericSpecializationNotReAbstracted",
	KindGenericSpecializationParam:                             "genericSpecializationParam",
	KindGenericTypeMetadataPattern:                             "genericTypeMetadataPattern",
	KindGenericTypeParamDecl:                                   "genericTypeParamDecl",
	KindGetter:                                                 "getter",
	KindGlobal:                                                 "global",
	KindGlobalActorFunctionType:                                "globalActorFunctionType",
	KindGlobalGetter:                                           "globalGetter",
	KindGlobalVariableOnceDeclList:                             "globalVariableOnceDeclList",
	KindGlobalVariableOnceToken:                                "globalVariableOnceToken",
	KindGlobalVariableOnceFunction:                             "globalVariableOnceFunction",
	KindHasSymbolQuery:                                         "hasSymbolQuery",
	KindIdentifier:                                             "identifier",
	KindImplConvention:                                         "implConvention",
	KindImplDifferentiabilityKind:                              "implDifferentiabilityKind",
	KindImplErrorResult:                                        "implErrorResult",
	KindImplEscaping:                                           "implEscaping",
	KindImplErasedIsolation:                                    "implErasedIsolation",
	KindImplSendingResult:                                      "implSendingResult",
	KindImplParameterResultDifferentiability:                   "implParameterResultDifferentiability",
	KindImplParameterSending:                                   "implParameterSending",
	KindImplFunctionAttribute:                                  "implFunctionAttribute",
	KindImplFunctionConvention:                                 "implFunctionConvention",
	KindImplFunctionConventionName:                             "implFunctionConventionName",
	KindImplFunctionType:                                       "implFunctionType",
	KindImplCoroutineKind:                                      "implCoroutineKind",
	KindImplicitClosure:                                        "implicitClosure",
	KindImplInvocationSubstitutions:                            "implInvocationSubstitutions",
	KindImplParameter:                                          "implParameter",
	KindImplPatternSubstitutions:                               "implPatternSubstitutions",
	KindImplResult:                                             "implResult",
	KindImplYield:                                              "implYield",
	KindIndex:                                                  "index",
	KindIndexSubset:                                            "indexSubset",
	KindInfixOperator:                                          "infixOperator",
	KindInitAccessor:                                           "initAccessor",
	KindInitializer:                                            "initializer",
	KindInlinedGenericFunction:                                 "inlinedGenericFunction",
	KindInOut:                                                  "inOut",
	KindInteger:                                                "integer",
	KindIsolated:                                               "isolated",
	KindIsolatedDeallocator:                                    "isolatedDeallocator",
	KindIsolatedAnyFunctionType:                                "isolatedAnyFunctionType",
	KindNonIsolatedCallerFunctionType:                          "nonIsolatedCallerFunctionType",
	KindIsSerialized:                                           "isSerialized",
	KindIVarDestroyer:                                          "iVarDestroyer",
	KindIVarInitializer:                                        "iVarInitializer",
	KindKeyPathEqualsThunkHelper:                               "keyPathEqualsThunkHelper",
	KindKeyPathGetterThunkHelper:                               "keyPathGetterThunkHelper",
	KindKeyPathHashThunkHelper:                                 "keyPathHashThunkHelper",
	KindKeyPathSetterThunkHelper:                               "keyPathSetterThunkHelper",
	KindKeyPathAppliedMethodThunkHelper:                        "keyPathAppliedMethodThunkHelper",
	KindKeyPathUnappliedMethodThunkHelper:                      "keyPathUnappliedMethodThunkHelper",
	KindLabelList:                                              "labelList",
	KindLazyProtocolWitnessTableAccessor:                       "lazyProtocolWitnessTableAccessor",
	KindLazyProtocolWitnessTableCacheVariable:                  "lazyProtocolWitnessTableCacheVariable",
	KindLocalDeclName:                                          "localDeclName",
	KindMacro:                                                  "macro",
	KindMacroExpansionLoc:                                      "macroExpansionLoc",
	KindMacroExpansionUniqueName:                               "macroExpansionUniqueName",
	KindMaterializeForSet:                                      "materializeForSet",
	KindMemberAttachedMacroExpansion:                           "memberAttachedMacroExpansion",
	KindMemberAttributeAttachedMacroExpansion:                  "memberAttributeAttachedMacroExpansion",
	KindMergedFunction:                                         "mergedFunction",
	KindMetaclass:                                              "metaclass",
	KindMetadataInstantiationCache:                             "metadataInstantiationCache",
	KindMetatype:                                               "metatype",
	KindMetatypeRepresentation:                                 "metatypeRepresentation",
	KindMethodDescriptor:                                       "methodDescriptor",
	KindMethodLookupFunction:                                   "methodLookupFunction",
	KindModifyAccessor:                                         "modifyAccessor",
	KindModule:                                                 "module",
	KindModuleDescriptor:                                       "moduleDescriptor",
	KindNativeOwningAddressor:                                  "nativeOwningAddressor",
	KindNativeOwningMutableAddressor:                           "nativeOwningMutableAddressor",
	KindNativePinningAddressor:                                 "nativePinningAddressor",
	KindNativePinningMutableAddressor:                          "nativePinningMutableAddressor",
	KindNegativeInteger:                                        "negativeInteger",
	KindNoDerivative:                                           "noDerivative",
	KindNoEscapeFunctionType:                                   "noEscapeFunctionType",
	KindNominalTypeDescriptor:                                  "nominalTypeDescriptor",
	KindNominalTypeDescriptorRecord:                            "nominalTypeDescriptorRecord",
	KindNoncanonicalSpecializedGenericTypeMetadata:             "noncanonicalSpecializedGenericTypeMetadata",
	KindNoncanonicalSpecializedGenericTypeMetadataCache:        "noncanonicalSpecializedGenericTypeMetadataCache",
	KindNonObjCAttribute:                                       "nonObjCAttribute",
	KindNonUniqueExtendedExistentialTypeShapeSymbolicReference: "nonUniqueExtendedExistentialTypeShapeSymbolicReference",
	KindNumber:                                                 "number",
	KindObjCAttribute:                                          "objCAttribute",
	KindObjCAsyncCompletionHandlerImpl:                         "objCAsyncCompletionHandlerImpl",
	KindObjCBlock:                                              "objCBlock",
	KindObjCMetadataUpdateFunction:                             "objCMetadataUpdateFunction",
	KindObjCResilientClassStub:                                 "objCResilientClassStub",
	KindObjectiveCProtocolSymbolicReference:                    "objectiveCProtocolSymbolicReference",
	KindOpaqueReturnType:                                       "opaqueReturnType",
	KindOpaqueReturnTypeIndex:                                  "opaqueReturnTypeIndex",
	KindOpaqueReturnTypeOf:                                     "opaqueReturnTypeOf",
	KindOpaqueReturnTypeParent:                                 "opaqueReturnTypeParent",
	KindOpaqueType:                                             "opaqueType",
	KindOpaqueTypeDescriptor:                                   "opaqueTypeDescriptor",
	KindOpaqueTypeDescriptorAccessor:                           "opaqueTypeDescriptorAccessor",
	KindOpaqueTypeDescriptorAccessorImpl:                       "opaqueTypeDescriptorAccessorImpl",
	KindOpaqueTypeDescriptorAccessorKey:                        "opaqueTypeDescriptorAccessorKey",
	KindOpaqueTypeDescriptorAccessorVar:                        "opaqueTypeDescriptorAccessorVar",
	KindOpaqueTypeDescriptorRecord:                             "opaqueTypeDescriptorRecord",
	KindOpaqueTypeDescriptorSymbolicReference:                  "opaqueTypeDescriptorSymbolicReference",
	KindOtherNominalType:                                       "otherNominalType",
	KindOutlinedAssignWithCopy:                                 "outlinedAssignWithCopy",
	KindOutlinedAssignWithCopyNoValueWitness:                   "outlinedAssignWithCopyNoValueWitness",
	KindOutlinedAssignWithTake:                                 "outlinedAssignWithTake",
	KindOutlinedAssignWithTakeNoValueWitness:                   "outlinedAssignWithTakeNoValueWitness",
	KindOutlinedBridgedMethod:                                  "outlinedBridgedMethod",
	KindOutlinedConsume:                                        "outlinedConsume",
	KindOutlinedCopy:                                           "outlinedCopy",
	KindOutlinedDestroy:                                        "outlinedDestroy",
	KindOutlinedDestroyNoValueWitness:                          "outlinedDestroyNoValueWitness",
	KindOutlinedEnumGetTag:                                     "outlinedEnumGetTag",
	KindOutlinedEnumProjectDataForLoad:                         "outlinedEnumProjectDataForLoad",
	KindOutlinedEnumTagStore:                                   "outlinedEnumTagStore",
	KindOutlinedInitializeWithCopy:                             "outlinedInitializeWithCopy",
	KindOutlinedInitializeWithCopyNoValueWitness:               "outlinedInitializeWithCopyNoValueWitness",
	KindOutlinedInitializeWithTake:                             "outlinedInitializeWithTake",
	KindOutlinedRelease:                                        "outlinedRelease",
	KindOutlinedRetain:                                         "outlinedRetain",
	KindOutlinedVariable:                                       "outlinedVariable",
	KindOutlinedReadOnlyObject:                                 "outlinedReadOnlyObject",
	KindOwned:                                                  "owned",
	KindOwningAddressor:                                        "owningAddressor",
	KindOwningMutableAddressor:                                 "owningMutableAddressor",
	KindPack:                                                   "pack",
	KindPackElement:                                            "packElement",
	KindPackElementLevel:                                       "packElementLevel",
	KindPackExpansion:                                          "packExpansion",
	KindPackProtocolConformance:                                "packProtocolConformance",
	KindPartialApplyForwarder:                                  "partialApplyForwarder",
	KindPartialApplyObjCForwarder:                              "partialApplyObjCForwarder",
	KindPeerAttachedMacroExpansion:                             "peerAttachedMacroExpansion",
	KindPostfixOperator:                                        "postfixOperator",
	KindPrefixOperator:                                         "prefixOperator",
	KindPredefinedObjCAsyncCompletionHandlerImpl:               "predefinedObjCAsyncCompletionHandlerImpl",
	KindPrivateDeclName:                                        "privateDeclName",
	KindPropertyDescriptor:                                     "propertyDescriptor",
	KindPropertyWrapperBackingInitializer:                      "propertyWrapperBackingInitializer",
	KindPropertyWrapperInitFromProjectedValue:                  "propertyWrapperInitFromProjectedValue",
	KindProtocol:                                               "protocol",
	KindProtocolConformance:                                    "protocolConformance",
	KindProtocolConformanceDescriptorRecord:                    "protocolConformanceDescriptorRecord",
	KindProtocolConformanceRefInTypeModule:                     "protocolConformanceRefInTypeModule",
	KindProtocolConformanceRefInProtocolModule:                 "protocolConformanceRefInProtocolModule",
	KindProtocolConformanceRefInOtherModule:                    "protocolConformanceRefInOtherModule",
	KindProtocolConformanceDescriptor:                          "protocolConformanceDescriptor",
	KindProtocolDescriptor:                                     "protocolDescriptor",
	KindProtocolDescriptorRecord:                               "protocolDescriptorRecord",
	KindProtocolList:                                           "protocolList",
	KindProtocolListWithAnyObject:                              "protocolListWithAnyObject",
	KindProtocolListWithClass:                                  "protocolListWithClass",
	KindProtocolRequirementsBaseDescriptor:                     "protocolRequirementsBaseDescriptor",
	KindProtocolSelfConformanceDescriptor:                      "protocolSelfConformanceDescriptor",
	KindProtocolSelfConformanceWitness:                         "protocolSelfConformanceWitness",
	KindProtocolSelfConformanceWitnessTable:                    "protocolSelfConformanceWitnessTable",
	KindProtocolSymbolicReference:                              "protocolSymbolicReference",
	KindProtocolWitness:                                        "protocolWitness",
	KindProtocolWitnessTable:                                   "protocolWitnessTable",
	KindProtocolWitnessTableAccessor:                           "protocolWitnessTableAccessor",
	KindProtocolWitnessTablePattern:                            "protocolWitnessTablePattern",
	KindReabstractionThunk:                                     "reabstractionThunk",
	KindReabstractionThunkHelper:                               "reabstractionThunkHelper",
	KindReabstractionThunkHelperWithGlobalActor:                "reabstractionThunkHelperWithGlobalActor",
	KindReabstractionThunkHelperWithSelf:                       "reabstractionThunkHelperWithSelf",
	KindReadAccessor:                                           "readAccessor",
	KindReflectionMetadataAssocTypeDescriptor:                  "reflectionMetadataAssocTypeDescriptor",
	KindReflectionMetadataBuiltinDescriptor:                    "reflectionMetadataBuiltinDescriptor",
	KindReflectionMetadataFieldDescriptor:                      "reflectionMetadataFieldDescriptor",
	KindReflectionMetadataSuperclassDescriptor:                 "reflectionMetadataSuperclassDescriptor",
	KindRelatedEntityDeclName:                                  "relatedEntityDeclName",
	KindResilientProtocolWitnessTable:                          "resilientProtocolWitnessTable",
	KindRetroactiveConformance:                                 "retroactiveConformance",
	KindReturnType:                                             "returnType",
	KindSending:                                                "sending",
	KindSendingResultFunctionType:                              "sendingResultFunctionType",
	KindSetter:                                                 "setter",
	KindShared:                                                 "shared",
	KindSilBoxImmutableField:                                   "silBoxImmutableField",
	KindSilBoxLayout:                                           "silBoxLayout",
	KindSilBoxMutableField:                                     "silBoxMutableField",
	KindSilBoxType:                                             "silBoxType",
	KindSilBoxTypeWithLayout:                                   "silBoxTypeWithLayout",
	KindSilPackDirect:                                          "silPackDirect",
	KindSilPackIndirect:                                        "silPackIndirect",
	KindSilThunkIdentity:                                       "silThunkIdentity",
	KindSilThunkHopToMainActorIfNeeded:                         "silThunkHopToMainActorIfNeeded",
	KindSpecializationPassID:                                   "specializationPassID",
	KindStatic:                                                 "static",
	KindStructure:                                              "structure",
	KindSubscript:                                              "subscript",
	KindSuffix:                                                 "suffix",
	KindSugaredOptional:                                        "sugaredOptional",
	KindSugaredArray:                                           "sugaredArray",
	KindSugaredDictionary:                                      "sugaredDictionary",
	KindSugaredParen:                                           "sugaredParen",
	KindSymbolicExtendedExistentialType:                        "symbolicExtendedExistentialType",
	KindTypeSymbolicReference:                                  "typeSymbolicReference",
	KindThinFunctionType:                                       "thinFunctionType",
	KindThrowsAnnotation:                                       "throwsAnnotation",
	KindTuple:                                                  "tuple",
	KindTupleElement:                                           "tupleElement",
	KindTupleElementName:                                       "tupleElementName",
	KindType:                                                   "type",
	KindTypeAlias:                                              "typeAlias",
	KindTypedThrowsAnnotation:                                  "typedThrowsAnnotation",
	KindTypeList:                                               "typeList",
	KindTypeMangling:                                           "typeMangling",
	KindTypeMetadata:                                           "typeMetadata",
	KindTypeMetadataAccessFunction:                             "typeMetadataAccessFunction",
	KindTypeMetadataCompletionFunction:                         "typeMetadataCompletionFunction",
	KindTypeMetadataDemanglingCache:                            "typeMetadataDemanglingCache",
	KindTypeMetadataInstantiationCache:                         "typeMetadataInstantiationCache",
	KindTypeMetadataInstantiationFunction:                      "typeMetadataInstantiationFunction",
	KindTypeMetadataLazyCache:                                  "typeMetadataLazyCache",
	KindTypeMetadataSingletonInitializationCache:               "typeMetadataSingletonInitializationCache",
	KindUncurriedFunctionType:                                  "uncurriedFunctionType",
	KindUniquable:                                              "uniquable",
	KindUniqueExtendedExistentialTypeShapeSymbolicReference:    "uniqueExtendedExistentialTypeShapeSymbolicReference",
	KindUnknownIndex:                                           "unknownIndex",
	KindUnmanaged:                                              "unmanaged",
	KindUnowned:                                                "unowned",
	KindUnsafeAddressor:                                        "unsafeAddressor",
	KindUnsafeMutableAddressor:                                 "unsafeMutableAddressor",
	KindValueWitness:                                           "valueWitness",
	KindValueWitnessTable:                                      "valueWitnessTable",
	KindVariable:                                               "variable",
	KindVariadicMarker:                                         "variadicMarker",
	KindVTableThunk:                                            "vTableThunk",
	KindWeak:                                                   "weak",
	KindWillSet:                                                "willSet",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is a declared kind. KindUnknown is not.
func (k Kind) Valid() bool {
	return k > KindUnknown && k < numKinds
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()
